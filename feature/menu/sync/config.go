package sync

// Config holds configuration for the menu sync run.
type Config struct {
	// CSVPath is the local path of the menu spreadsheet export.
	CSVPath string `mapstructure:"csv_path" default:"menu.csv"`
	// Collection is the document collection holding category documents.
	Collection string `mapstructure:"collection" default:"menu"`
	// ItemsCollection is the document collection holding item documents.
	ItemsCollection string `mapstructure:"items_collection" default:"menu_items"`
}
