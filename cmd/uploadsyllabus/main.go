package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"psle-tutor-backend/config"
	internal_services "psle-tutor-backend/internal/services"
	"psle-tutor-backend/syllabus/services"

	"github.com/joho/godotenv"
)

// Uploads the reference PDFs in a folder to the Gemini Files API and prints
// their URIs, so the tutor can prompt against cached syllabus material.
func main() {
	folder := flag.String("folder", "pdfs", "folder containing the syllabus PDFs")
	flag.Parse()

	config.InitLogger()

	// Best effort; the key may come from the secrets file instead
	_ = godotenv.Load(".env")

	apiKey, err := config.ResolveGoogleAPIKey(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gemini, err := internal_services.NewGeminiService(apiKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize Gemini client: %v\n", err)
		os.Exit(1)
	}

	pdfs, err := services.ScanFolder(*folder)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v. Please create it and add PDF files.\n", err)
		os.Exit(1)
	}

	if len(pdfs) == 0 {
		abs, _ := filepath.Abs(*folder)
		fmt.Printf("Warning: the %q folder is empty. No PDF files found.\n", *folder)
		fmt.Printf("Please add PDF files to: %s\n", abs)
		os.Exit(0)
	}

	fmt.Printf("Found %d PDF file(s) to upload:\n\n", len(pdfs))
	for _, name := range pdfs {
		fmt.Printf("   - %s\n", name)
	}

	fmt.Println("\nStarting upload process...")

	ctx := context.Background()
	type uploaded struct {
		fileName string
		uri      string
	}
	var ok []uploaded
	var failed []string

	for _, name := range pdfs {
		fmt.Printf("Uploading: %s...\n", name)
		uri, err := gemini.UploadFile(ctx, filepath.Join(*folder, name))
		if err != nil {
			fmt.Printf("   Error uploading %s: %v\n", name, err)
			failed = append(failed, name)
			continue
		}
		ok = append(ok, uploaded{fileName: name, uri: uri})
		fmt.Printf("   Success! URI: %s\n", uri)
	}

	fmt.Println("\nUPLOAD SUMMARY")
	fmt.Printf("Successfully uploaded: %d file(s)\n", len(ok))
	if len(failed) > 0 {
		fmt.Printf("Failed to upload: %d file(s)\n", len(failed))
	}

	fmt.Println("\nFILE URIs:")
	if len(ok) == 0 {
		fmt.Println("No files were successfully uploaded.")
		return
	}
	for _, item := range ok {
		fmt.Printf("Filename: %s\n", item.fileName)
		fmt.Printf("URI: %s\n\n", item.uri)
	}
	fmt.Println("Reference these files by their URI when prompting the model.")
}
