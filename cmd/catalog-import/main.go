// Command catalog-import loads an exercise catalog JSON file into MongoDB,
// from local disk or from the configured S3 bucket, and reports template
// exercises that still have no catalog entry.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"alcyxob/fitness-planner/internal/catalog"
	"alcyxob/fitness-planner/internal/config"
	"alcyxob/fitness-planner/internal/importer"
	"alcyxob/fitness-planner/internal/logging"
	"alcyxob/fitness-planner/internal/repository/mongo"
	"alcyxob/fitness-planner/internal/storage"

	log "github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", ".", "directory containing config.yaml")
	filePath := flag.String("file", "", "path to a local catalog JSON file")
	s3Key := flag.String("s3-key", "", "object key of the catalog JSON file in the configured bucket")
	strict := flag.Bool("strict", false, "exit non-zero when template exercises stay unresolved")
	flag.Parse()

	if (*filePath == "") == (*s3Key == "") {
		log.Fatal("exactly one of -file or -s3-key is required")
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := logging.Setup(cfg.Log.Level, cfg.Log.Format, cfg.Log.File); err != nil {
		log.Fatalf("set up logging: %v", err)
	}
	if cfg.Database.Driver != config.DriverMongo {
		log.Fatalf("catalog import needs the mongo driver, got %q", cfg.Database.Driver)
	}

	unresolved, err := run(cfg, *filePath, *s3Key)
	if err != nil {
		log.Fatal(err)
	}
	if *strict && unresolved > 0 {
		log.Fatalf("%d template exercises unresolved", unresolved)
	}
}

// run imports the catalog and returns the number of unresolved template exercises.
func run(cfg config.Config, filePath, s3Key string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	registry, err := catalog.Load()
	if err != nil {
		return 0, fmt.Errorf("training catalog is inconsistent: %w", err)
	}

	src, err := openSource(ctx, cfg.S3, filePath, s3Key)
	if err != nil {
		return 0, fmt.Errorf("open catalog: %w", err)
	}
	records, err := importer.Decode(src)
	_ = src.Close()
	if err != nil {
		return 0, fmt.Errorf("invalid catalog: %w", err)
	}

	client, err := mongo.ConnectDB(ctx, cfg.Database.URI, "catalog-import")
	if err != nil {
		return 0, fmt.Errorf("connect to MongoDB: %w", err)
	}
	defer func() {
		if err := mongo.DisconnectDB(client); err != nil {
			log.Errorf("disconnect MongoDB: %v", err)
		}
	}()
	db := client.Database(cfg.Database.Name)
	mongo.EnsureIndexes(ctx, db)

	report, err := importer.Import(ctx, mongo.NewMongoExerciseRepository(db), registry, records)
	if err != nil {
		return 0, fmt.Errorf("import: %w", err)
	}

	for _, name := range report.Unresolved {
		log.WithField("exercise", name).Warn("template exercise has no catalog entry")
	}
	for _, target := range report.UnmappedTargets {
		log.WithField("target", target).Warn("catalog target maps to no muscle")
	}
	log.WithFields(log.Fields{
		"records":    len(records),
		"inserted":   report.Inserted,
		"updated":    report.Updated,
		"unresolved": len(report.Unresolved),
	}).Info("catalog import finished")
	return len(report.Unresolved), nil
}

func openSource(ctx context.Context, s3Cfg config.S3Config, filePath, s3Key string) (io.ReadCloser, error) {
	if filePath != "" {
		return os.Open(filePath)
	}
	fs, err := storage.NewS3Storage(ctx, s3Cfg)
	if err != nil {
		return nil, err
	}
	return fs.GetObject(ctx, s3Key)
}
