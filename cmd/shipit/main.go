package main

import (
	"fmt"
	"log"
	"os"

	"text-analytics/server/internal/bootstrap"
	"text-analytics/server/internal/keygen"
)

func main() {
	dir, err := os.Getwd()
	if err != nil {
		log.Fatalf("getwd: %v", err)
	}

	fmt.Println("=== AI Text Analytics API deploy helper ===")
	fmt.Println()

	initialized, err := bootstrap.Prepare(dir, bootstrap.ExecRunner{Dir: dir})
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	if initialized {
		fmt.Println("Initialized a fresh git repository on branch main.")
	} else {
		fmt.Println("Committed current changes to the existing repository.")
	}

	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println()
	fmt.Println("1. Create a remote repository (GitHub, GitLab, ...) and push:")
	fmt.Println("     git remote add origin <repository-url>")
	fmt.Println("     git push -u origin main")
	fmt.Println()
	fmt.Println("2. Create a project on your hosting provider and connect the repository.")
	fmt.Println("   The service builds with the standard Go buildpack; the entrypoint is cmd/server.")
	fmt.Println()
	fmt.Println("3. Set the environment variables:")
	fmt.Println("     API_KEY  - the master key for direct API access")
	fmt.Println("     PORT     - listen port (defaults to 8000)")
	fmt.Println()
	fmt.Printf("   Suggested API key: %s\n", keygen.Suggest())
	fmt.Println("   (display-only suggestion; pick your own secret for production)")
	fmt.Println()
	fmt.Println("4. Once deployed, verify with:")
	fmt.Println("     curl https://<your-domain>/health")
}
