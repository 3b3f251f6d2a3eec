package outline

// Category classifies a file by its declared MIME type.
type Category int

const (
	CategoryOther Category = iota
	CategorySpreadsheet
	CategoryDocument
	CategoryPresentation
	CategoryForm
	CategorySite
	CategoryBoard
	CategoryScript
)

// FolderEmoji marks folder entries when decoration is on.
const FolderEmoji = "📁"

var mimeCategories = map[string]Category{
	"application/vnd.google-apps.spreadsheet":  CategorySpreadsheet,
	"application/vnd.google-apps.document":     CategoryDocument,
	"application/vnd.google-apps.presentation": CategoryPresentation,
	"application/vnd.google-apps.form":         CategoryForm,
	"application/vnd.google-apps.site":         CategorySite,
	"application/vnd.google-apps.jam":          CategoryBoard,
	"application/vnd.google-apps.script":       CategoryScript,
}

var categoryEmojis = map[Category]string{
	CategorySpreadsheet:  "📊",
	CategoryDocument:     "📝",
	CategoryPresentation: "📽️",
	CategoryForm:         "📋",
	CategorySite:         "🌐",
	CategoryBoard:        "🖍️",
	CategoryScript:       "⚙️",
}

// Classify maps a MIME type to its category. Unknown types are CategoryOther.
func Classify(mimeType string) Category {
	if c, ok := mimeCategories[mimeType]; ok {
		return c
	}
	return CategoryOther
}

// EmojiFor returns the decoration symbol for c, falling back to a generic
// document symbol so every category renders something.
func EmojiFor(c Category) string {
	if e, ok := categoryEmojis[c]; ok {
		return e
	}
	return "📄"
}
