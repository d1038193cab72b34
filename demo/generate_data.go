//go:build ignore

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

// Generates a messy directory of loosely-named study files for trying the
// organizer:
//
//	go run demo/generate_data.go -dir ./demo_files
//	go run ./cmd/organizer -r ./demo_files
func main() {
	dir := flag.String("dir", "demo_files", "Directory to create the sample files in")
	flag.Parse()

	topLevel := []string{
		"математика_лекция_15.03.2024.pdf",
		"Лекция по физике.pptx",
		"math_practice_tasks.docx",
		"program_lab_2024-02-10.py",
		"задание_sql_базы.sql",
		"english_exam_2023-12-20.pdf",
		"курсовая работа веб.docx",
		"web_project_final.html",
		"геометрия контрольная 01.11.2023.pdf",
		"дополнительно материалы.zip",
		"algorithm_theory.txt",
		"photo_from_lecture.jpg",
		"random_notes",
		"IMG_20240315_102233.png",
		".DS_Store",
		"thumbs.db",
		"desktop.ini",
	}

	nested := map[string][]string{
		"semester1": {
			"физика_лаба_3.docx",
			"math_lecture_10-09-2023.pptx",
			"инглиш упражнение 5.pdf",
		},
		"semester1/old": {
			"database_exam_prep.xlsx",
			"доклад по алгоритмам.ppt",
		},
	}

	write := func(path string) error {
		content := fmt.Sprintf("demo content for %s\n", filepath.Base(path))
		return os.WriteFile(path, []byte(content), 0644)
	}

	if err := os.MkdirAll(*dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create %s: %v\n", *dir, err)
		os.Exit(1)
	}

	count := 0
	for _, name := range topLevel {
		if err := write(filepath.Join(*dir, name)); err != nil {
			fmt.Fprintf(os.Stderr, "failed to create %s: %v\n", name, err)
			os.Exit(1)
		}
		count++
	}

	for sub, names := range nested {
		subDir := filepath.Join(*dir, filepath.FromSlash(sub))
		if err := os.MkdirAll(subDir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "failed to create %s: %v\n", subDir, err)
			os.Exit(1)
		}
		for _, name := range names {
			if err := write(filepath.Join(subDir, name)); err != nil {
				fmt.Fprintf(os.Stderr, "failed to create %s: %v\n", name, err)
				os.Exit(1)
			}
			count++
		}
	}

	fmt.Printf("Created %d demo files in %s\n", count, *dir)
}
