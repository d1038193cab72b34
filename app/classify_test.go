package app

import (
	"testing"

	"github.com/pavel-webdev/file-organizer/models"
)

func TestClassify(t *testing.T) {
	c := NewClassifier(DefaultRules())

	tests := []struct {
		name     string
		filename string
		subject  string
		category string
		date     string
		fileType string
	}{
		{
			name:     "full english name",
			filename: "math_lecture_2024-03-15.pptx",
			subject:  "math",
			category: "lecture",
			date:     "2024-03-15",
			fileType: "presentations",
		},
		{
			name:     "day first date",
			filename: "15.03.2024_report.pdf",
			subject:  "unknown",
			category: "other",
			date:     "2024-03-15",
			fileType: "documents",
		},
		{
			name:     "nothing recognized",
			filename: "randomfile.xyz",
			subject:  "unknown",
			category: "other",
			date:     "",
			fileType: "other",
		},
		{
			name:     "russian keywords",
			filename: "Лекция_по_физике.pdf",
			subject:  "physics",
			category: "lecture",
			date:     "",
			fileType: "documents",
		},
		{
			name:     "russian practice task",
			filename: "задание_базы_данных.sql",
			subject:  "database",
			category: "practice",
			date:     "",
			fileType: "code",
		},
		{
			name:     "uppercase keyword still matches",
			filename: "MATH_Exam_Prep.docx",
			subject:  "math",
			category: "exam",
			date:     "",
			fileType: "documents",
		},
		{
			name:     "dotted date day first",
			filename: "program_lab_01.12.2023.py",
			subject:  "programming",
			category: "lab",
			date:     "2023-12-01",
			fileType: "code",
		},
		{
			name:     "no extension",
			filename: "english_material",
			subject:  "english",
			category: "material",
			date:     "",
			fileType: "other",
		},
		{
			name:     "invalid calendar date accepted as written",
			filename: "notes_99.13.2024.txt",
			subject:  "unknown",
			category: "other",
			date:     "2024-13-99",
			fileType: "documents",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := c.Classify(tt.filename)

			if info.OriginalName != tt.filename {
				t.Errorf("original name: got %q, want %q", info.OriginalName, tt.filename)
			}
			if info.Subject != tt.subject {
				t.Errorf("subject: got %q, want %q", info.Subject, tt.subject)
			}
			if info.Category != tt.category {
				t.Errorf("category: got %q, want %q", info.Category, tt.category)
			}
			if info.Date != tt.date {
				t.Errorf("date: got %q, want %q", info.Date, tt.date)
			}
			if info.FileType != tt.fileType {
				t.Errorf("file type: got %q, want %q", info.FileType, tt.fileType)
			}
		})
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	c := NewClassifier(DefaultRules())

	// "lecture" is tested before "exam" in the category table, so a name
	// containing keywords from both resolves to lecture.
	info := c.Classify("lecture_exam_review.pdf")
	if info.Category != "lecture" {
		t.Errorf("expected lecture to win over exam, got %q", info.Category)
	}

	// Same for subjects: math is tested before physics.
	info = c.Classify("math_and_physics.pdf")
	if info.Subject != "math" {
		t.Errorf("expected math to win over physics, got %q", info.Subject)
	}
}

func TestClassify_DatePatternOrder(t *testing.T) {
	c := NewClassifier(DefaultRules())

	// DD-MM-YYYY is tried first; 15-03-2024 must not be read as a year 15.
	info := c.Classify("report_15-03-2024.pdf")
	if info.Date != "2024-03-15" {
		t.Errorf("got %q, want 2024-03-15", info.Date)
	}

	// A four-digit leading group selects the YYYY-MM-DD reading.
	info = c.Classify("report_2024.03.15.pdf")
	if info.Date != "2024-03-15" {
		t.Errorf("got %q, want 2024-03-15", info.Date)
	}
}

func TestClassify_CustomRules(t *testing.T) {
	rules := DefaultRules()
	rules.Subjects = append([]models.KeywordRule{{Label: "chemistry", Keywords: []string{"хим", "chem"}}}, rules.Subjects...)

	c := NewClassifier(rules)

	info := c.Classify("chem_lab_3.pdf")
	if info.Subject != "chemistry" {
		t.Errorf("custom rule did not match, got %q", info.Subject)
	}
	// Default rules still apply after the custom one.
	info = c.Classify("math_notes.pdf")
	if info.Subject != "math" {
		t.Errorf("default rule lost, got %q", info.Subject)
	}
}
