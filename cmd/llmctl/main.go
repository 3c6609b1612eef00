// llmctl is the administration CLI for the LLM agent: database setup,
// document ingestion, local queries, and listing of stored objects.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
