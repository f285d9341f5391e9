package main

import (
	"errors"
	"flag"
	"os"

	"social-docstore/seed"

	"github.com/sirupsen/logrus"
)

func main() {
	var (
		out         = flag.String("out", "db.json", "seed file to write")
		users       = flag.Int("users", 10, "number of users")
		publicacoes = flag.Int("publicacoes", 20, "number of posts")
		storys      = flag.Int("storys", 10, "number of stories")
		maxLikes    = flag.Int("max-likes", 5, "maximum likes per story")
		seedValue   = flag.Int64("seed", 0, "random seed, 0 for time based")
		force       = flag.Bool("force", false, "overwrite an existing seed file")
	)
	flag.Parse()

	log := logrus.WithField("out", *out)

	if _, err := os.Stat(*out); err == nil && !*force {
		log.Fatal("Seed file already exists, use -force to overwrite")
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		log.WithField("error", err).Fatal("Failed to inspect seed file")
	}

	db := seed.Generate(seed.Options{
		Users:       *users,
		Publicacoes: *publicacoes,
		Storys:      *storys,
		MaxLikes:    *maxLikes,
		Seed:        *seedValue,
	})
	doc, err := db.Encode()
	if err != nil {
		log.WithField("error", err).Fatal("Failed to encode seed")
	}
	if err := os.WriteFile(*out, doc.Data.Bytes(), 0644); err != nil {
		log.WithField("error", err).Fatal("Failed to write seed")
	}

	log.WithFields(logrus.Fields{
		"usuarios":    len(db.Usuarios),
		"publicacoes": len(db.Publicacoes),
		"storys":      len(db.Storys),
	}).Info("Seed written")
}
