// Command scripturemd regenerates the vault's scripture chapter files
// from the volume JSON exports, refreshing frontmatter and resource links
// while preserving verse annotations.
package main

import (
	"flag"
	"log"
	"path/filepath"

	"conference-archive/pkg/scripturemd"
)

func main() {
	dataDir := flag.String("data", "lds_scriptures_json", "directory holding the volume JSON exports")
	outDir := flag.String("out", "Scriptures", "vault directory to write chapter files into")
	flag.Parse()

	updated := 0
	for _, volume := range scripturemd.Volumes {
		path := filepath.Join(*dataDir, scripturemd.VolumeFiles[volume])
		books, err := scripturemd.LoadVolume(path, volume)
		if err != nil {
			log.Fatalf("Failed to load %s: %v", volume, err)
		}

		for _, book := range books {
			for _, chapter := range book.Chapters {
				plan, err := scripturemd.PlanChapterFile(volume, book.Name, chapter.Number)
				if err != nil {
					log.Printf("Skipping %s / %s %d: %v", volume, book.Name, chapter.Number, err)
					continue
				}

				top := scripturemd.RenderTop(volume, plan.Book, plan.BookNumber, chapter.Number, chapter.Resources, chapter.Summaries)
				if err := scripturemd.UpdateChapterFile(*outDir, plan, top, chapter.Verses); err != nil {
					log.Fatalf("Failed to update %s: %v", plan.Name, err)
				}
				updated++
			}
		}
		log.Printf("Updated %s", volume)
	}

	log.Printf("Updated %d chapter files", updated)
}
