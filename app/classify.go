package app

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pavel-webdev/file-organizer/models"
)

// Date patterns tried in order against the original-case filename. The
// position of the four-digit group tells which pattern matched. Values are
// taken as written, no calendar validation.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{2})[-.](\d{2})[-.](\d{4})`),
	regexp.MustCompile(`(\d{4})[-.](\d{2})[-.](\d{2})`),
}

// DefaultRules returns the built-in classification tables. Keywords cover
// both Russian and English naming habits. Slice order is the match priority.
func DefaultRules() models.RuleSet {
	return models.RuleSet{
		Subjects: []models.KeywordRule{
			{Label: "math", Keywords: []string{"матема", "math", "алгебр", "геометр"}},
			{Label: "programming", Keywords: []string{"програм", "program", "код", "алгоритм"}},
			{Label: "database", Keywords: []string{"баз", "database", "sql", "бд"}},
			{Label: "web", Keywords: []string{"веб", "web", "html", "css", "js"}},
			{Label: "english", Keywords: []string{"англ", "english", "инглиш"}},
			{Label: "physics", Keywords: []string{"физик", "physics"}},
		},
		Categories: []models.KeywordRule{
			{Label: "lecture", Keywords: []string{"лекция", "lecture", "теория", "theory", "доклад"}},
			{Label: "practice", Keywords: []string{"практика", "practice", "задание", "task", "упражнение"}},
			{Label: "project", Keywords: []string{"проект", "project", "курсовая", "диплом", "исследование"}},
			{Label: "lab", Keywords: []string{"лаба", "lab", "лабораторная", "experiment"}},
			{Label: "material", Keywords: []string{"материал", "material", "ресурс", "resource", "дополнительно"}},
			{Label: "exam", Keywords: []string{"экзамен", "exam", "зачет", "test", "контрольная"}},
		},
		FileTypes: []models.ExtensionRule{
			{Label: "documents", Extensions: []string{".pdf", ".doc", ".docx", ".txt", ".rtf"}},
			{Label: "presentations", Extensions: []string{".ppt", ".pptx", ".key"}},
			{Label: "spreadsheets", Extensions: []string{".xls", ".xlsx", ".csv"}},
			{Label: "code", Extensions: []string{".py", ".java", ".cpp", ".js", ".html", ".css", ".sql"}},
			{Label: "archives", Extensions: []string{".zip", ".rar", ".7z", ".tar", ".gz"}},
			{Label: "images", Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".svg"}},
		},
	}
}

// Classifier derives subject, category, date and file type from a filename.
// It is pure: no filesystem access, no global state.
type Classifier struct {
	rules models.RuleSet
}

// NewClassifier builds a classifier from the given tables. Any empty table
// falls back to the corresponding default.
func NewClassifier(rules models.RuleSet) *Classifier {
	def := DefaultRules()
	if len(rules.Subjects) == 0 {
		rules.Subjects = def.Subjects
	}
	if len(rules.Categories) == 0 {
		rules.Categories = def.Categories
	}
	if len(rules.FileTypes) == 0 {
		rules.FileTypes = def.FileTypes
	}
	return &Classifier{rules: rules}
}

// Classify analyzes a filename. Every input produces a result: fields with
// no match take their defaults ("unknown" subject, "other" category and type,
// empty date).
func (c *Classifier) Classify(filename string) models.FileInfo {
	info := models.FileInfo{
		OriginalName: filename,
		Subject:      "unknown",
		Category:     "other",
		FileType:     "other",
	}

	lower := strings.ToLower(filename)

	for _, rule := range c.rules.Subjects {
		if containsAny(lower, rule.Keywords) {
			info.Subject = rule.Label
			break
		}
	}

	for _, rule := range c.rules.Categories {
		if containsAny(lower, rule.Keywords) {
			info.Category = rule.Label
			break
		}
	}

	// Date matching runs against the original name, not the lowered one.
	info.Date = extractDate(filename)

	ext := strings.ToLower(filepath.Ext(filename))
	for _, rule := range c.rules.FileTypes {
		for _, e := range rule.Extensions {
			if ext == e {
				info.FileType = rule.Label
				break
			}
		}
		if info.FileType != "other" {
			break
		}
	}

	return info
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// extractDate returns the first date found as YYYY-MM-DD, or "" when no
// pattern matches.
func extractDate(filename string) string {
	for _, re := range datePatterns {
		m := re.FindStringSubmatch(filename)
		if m == nil {
			continue
		}
		if len(m[1]) == 4 {
			return m[1] + "-" + m[2] + "-" + m[3]
		}
		return m[3] + "-" + m[2] + "-" + m[1]
	}
	return ""
}
