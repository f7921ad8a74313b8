package derive

// Category placeholder photos shown when an item has no image of its
// own. Unsplash crops sized for the card and gallery grids.
var placeholderImages = map[string]string{
	"Travel":          "https://images.unsplash.com/photo-1501426026826-31c667bdf23d?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=450",
	"Adventure":       "https://images.unsplash.com/photo-1521673252667-e05da380b252?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=450",
	"Personal Growth": "https://images.unsplash.com/photo-1525201548942-d8732f6617a0?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=450",
	"Education":       "https://images.unsplash.com/photo-1519904981063-b0cf448d479e?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=450",
	"Health":          "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=450",
	"Finance":         "https://images.unsplash.com/photo-1526304640581-d334cdbbf45e?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=450",
	"Creativity":      "https://images.unsplash.com/photo-1513364776144-60967b0f800f?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=450",
	"Skill":           "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=450",
	"Relationships":   "https://images.unsplash.com/photo-1541943181603-d8fe267a5dcf?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=450",
}

const defaultPlaceholderImage = "https://images.unsplash.com/photo-1483347756197-71ef80e95f73?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=450"

// PlaceholderImage returns the stock photo for a category, falling
// back to a generic one for unknown or empty categories.
func PlaceholderImage(category string) string {
	url, ok := placeholderImages[category]
	if ok {
		return url
	}
	return defaultPlaceholderImage
}

// DisplayImage resolves the image shown for an item: its own URL when
// set, otherwise the category placeholder.
func DisplayImage(imageURL, category string) string {
	if imageURL != "" {
		return imageURL
	}
	return PlaceholderImage(category)
}
