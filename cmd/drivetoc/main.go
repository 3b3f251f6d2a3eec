package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/calegray/drivetoc/internal/auth"
	"github.com/calegray/drivetoc/internal/config"
	"github.com/calegray/drivetoc/internal/drive"
	"github.com/calegray/drivetoc/internal/extract"
	"github.com/calegray/drivetoc/internal/outline"
	"github.com/calegray/drivetoc/internal/render"
	"github.com/calegray/drivetoc/internal/store"
	"github.com/calegray/drivetoc/internal/ui"
)

var version = "v0.3"

func main() {
	cfgPath := flag.String("config", "config.yaml", "config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Printf("%s not found or invalid: %v", *cfgPath, err)
		cfg = config.FromEnvFallback()
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config invalid: %v", err)
	}
	log.Printf("drivetoc %s starting. output=%s emoji=%v", version, cfg.Output, cfg.Emoji)

	db, err := store.Open("drivetoc.db")
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	tokStore := store.NewTokenStore(db)
	authClient := auth.NewDeviceCodeClient(cfg.ClientID, cfg.ClientSecret, tokStore)

	ctx := context.Background()
	if err := authClient.EnsureLogin(ctx); err != nil {
		log.Fatalf("login failed: %v", err)
	}
	httpClient := authClient.AuthorizedClient(ctx)

	raw := flag.Arg(0)
	if raw == "" {
		last, _ := store.GetMeta(ctx, db, "last_folder_id")
		raw = ui.PromptFolderURL(last)
	}
	if raw == "" {
		log.Fatal("no folder given")
	}

	folderID, err := extract.ExtractID(raw)
	if err != nil {
		if errors.Is(err, extract.ErrNoID) {
			log.Fatalf("couldn't find a folder ID in %q: paste the folder's URL from Drive (it contains \"folders/<id>\") or the ID itself", raw)
		}
		log.Fatalf("extract folder ID: %v", err)
	}

	d := drive.NewClient(httpClient)
	root, err := d.GetFile(ctx, folderID)
	if err != nil {
		log.Fatalf("fetch folder %s: %v", folderID, err)
	}
	if !root.IsFolder() {
		log.Fatalf("%s (%s) is not a folder", root.Name, folderID)
	}

	loader := ui.Start("Walking "+root.Name, 120*time.Millisecond)
	entries, err := outline.Flatten(ctx, drive.NewFolderHandle(d, *root), 0, cfg.Emoji)
	if err != nil {
		loader.Stop("")
		log.Fatalf("traverse %s: %v", root.Name, err)
	}
	loader.Stop("")
	log.Printf("Flattened %d entries under %s", len(entries), root.Name)

	switch cfg.Output {
	case config.OutputDoc:
		title := cfg.DocTitle
		if title == "" {
			title = root.Name + " — outline"
		}
		dw := render.NewDocWriter(httpClient)
		docURL, err := dw.Write(ctx, title, entries)
		if err != nil {
			log.Fatalf("write doc: %v", err)
		}
		_ = store.SetMeta(ctx, db, "last_doc_url", docURL)
		log.Printf("Document created: %s", docURL)
	default:
		f, err := os.Create(cfg.OutputPath)
		if err != nil {
			log.Fatalf("create %s: %v", cfg.OutputPath, err)
		}
		if err := render.Markdown(f, entries); err != nil {
			f.Close()
			log.Fatalf("write %s: %v", cfg.OutputPath, err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("close %s: %v", cfg.OutputPath, err)
		}
		log.Printf("Outline written to %s", cfg.OutputPath)
	}

	_ = store.SetMeta(ctx, db, "last_folder_id", folderID)
	log.Println("Done.")
}
