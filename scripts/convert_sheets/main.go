package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mroshb/quizmaster_bot/internal/quiz"
	"github.com/xuri/excelize/v2"
)

// Converts an Excel workbook of quiz questions into the JSON sheet files
// the bot fetches at selection time. Each worksheet becomes one file.
//
// Expected columns: statement, option1..option4, correct option number
// (1-4). The first row is treated as a header.
func main() {
	input := flag.String("in", "", "path to the .xlsx workbook")
	outDir := flag.String("out", ".", "directory to write the JSON sheet files into")
	flag.Parse()

	if *input == "" {
		log.Fatal("usage: convert_sheets -in questions.xlsx [-out dir]")
	}

	f, err := excelize.OpenFile(*input)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal(err)
	}

	totalConverted := 0

	for _, sheetName := range f.GetSheetList() {
		fmt.Printf("Converting sheet: %s\n", sheetName)
		rows, err := f.GetRows(sheetName)
		if err != nil {
			fmt.Printf("Error reading sheet %s: %v\n", sheetName, err)
			continue
		}

		var records []quiz.QuestionRecord
		for i, row := range rows {
			if i == 0 || len(row) < 6 { // Skip header or invalid rows
				continue
			}

			// row[0]: statement
			// row[1..4]: options
			// row[5]: correct option number (1-4)

			options := []string{row[1], row[2], row[3], row[4]}

			correctIdx := -1
			switch strings.TrimSpace(row[5]) {
			case "1":
				correctIdx = 0
			case "2":
				correctIdx = 1
			case "3":
				correctIdx = 2
			case "4":
				correctIdx = 3
			default:
				fmt.Printf("Invalid correct option %q in row %d\n", row[5], i)
				continue
			}

			records = append(records, quiz.QuestionRecord{
				Statement:     row[0],
				Option1:       options[0],
				Option2:       options[1],
				Option3:       options[2],
				Option4:       options[3],
				CorrectOption: options[correctIdx],
			})
		}

		// Same validation the bot applies when it loads the sheet
		if _, err := quiz.NewQuestionSet(records); err != nil {
			fmt.Printf("Sheet %s failed validation: %v\n", sheetName, err)
			continue
		}

		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			fmt.Printf("Error marshaling sheet %s: %v\n", sheetName, err)
			continue
		}

		outPath := filepath.Join(*outDir, sheetName+".json")
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			fmt.Printf("Error writing %s: %v\n", outPath, err)
			continue
		}

		totalConverted += len(records)
		fmt.Printf("Wrote %d questions to %s\n", len(records), outPath)
	}

	fmt.Printf("Successfully converted %d questions.\n", totalConverted)
}
