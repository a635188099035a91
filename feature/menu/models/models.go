package models

import "time"

// Row is one raw record from the menu spreadsheet. All fields arrive as
// strings; coercion happens in the catalog builder.
type Row struct {
	Category      string
	CategoryOrder string
	FileName      string
	ImageURL      string
	Name          string
	Description   string
	Price         string
	Slug          string
	IsNew         string
}

// Item is a single menu entry owned by exactly one category.
type Item struct {
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Price       float64   `bson:"price" json:"price"`
	FileName    string    `bson:"fileName" json:"fileName"`
	ImageURL    string    `bson:"image_url" json:"image_url"`
	Slug        string    `bson:"slug" json:"slug"`
	IsNew       bool      `bson:"isNew" json:"isNew"`
	IsDeleted   bool      `bson:"isDeleted" json:"isDeleted"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// CategoryDoc is the persisted form of a category, keyed by its slug.
type CategoryDoc struct {
	Name      string    `bson:"category" json:"category"`
	Order     float64   `bson:"categoryOrder" json:"categoryOrder"`
	Slug      string    `bson:"slug" json:"slug"`
	ItemCount int       `bson:"itemCount" json:"itemCount"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Category is the in-memory form built during a sync run: the document
// fields plus the ordered items folded in from the spreadsheet.
type Category struct {
	Name  string
	Order float64
	Slug  string
	Items []Item
}

// Doc returns the persistable document for the category as of now.
// ItemCount counts folded source rows; a later item slug collision does not
// reduce it.
func (c *Category) Doc(now time.Time) CategoryDoc {
	return CategoryDoc{
		Name:      c.Name,
		Order:     c.Order,
		Slug:      c.Slug,
		ItemCount: len(c.Items),
		UpdatedAt: now,
	}
}

// CategoryWithItems is the read-API shape for a single category.
type CategoryWithItems struct {
	CategoryDoc
	Items []Item `json:"items"`
}
