// Package seed builds fake seed documents for local development. The result
// is meant to be written to the seed file the gateway copies on first start.
package seed

import (
	"time"

	"social-docstore/core"

	"github.com/brianvoe/gofakeit/v6"
)

// Options controls the size of the generated document. A zero Seed uses the
// current time; publication dates fall in the three months before Until,
// which defaults to now.
type Options struct {
	Users       int
	Publicacoes int
	Storys      int
	MaxLikes    int
	Seed        int64
	Until       time.Time
}

// Generate returns a document with sequential ids in every collection.
// Every post and story belongs to one of the generated users.
func Generate(opts Options) *core.Database {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	f := gofakeit.New(seed)
	until := opts.Until
	if until.IsZero() {
		until = time.Now()
	}
	db := core.NewDatabase()

	for i := 1; i <= opts.Users; i++ {
		db.Usuarios = append(db.Usuarios, core.User{
			ID:               i,
			Nome:             f.Name(),
			Email:            f.Email(),
			Senha:            f.Password(true, true, true, false, false, 10),
			Premium:          f.Bool(),
			ImagemPerfil:     f.ImageURL(200, 200),
			SenhaRecuperacao: f.Word(),
		})
	}
	if opts.Users == 0 {
		return db
	}

	for i := 1; i <= opts.Publicacoes; i++ {
		db.Publicacoes = append(db.Publicacoes, core.Publicacao{
			ID:             i,
			Descricao:      f.Sentence(8),
			DataPublicacao: publishedAt(f, until),
			Imagem:         f.ImageURL(800, 800),
			Local:          f.City(),
			IDUsuario:      f.Number(1, opts.Users),
		})
	}

	for i := 1; i <= opts.Storys; i++ {
		story := core.Story{
			ID:             i,
			Descricao:      f.Sentence(4),
			DataPublicacao: publishedAt(f, until),
			Imagem:         f.ImageURL(1080, 1920),
			Local:          f.City(),
			IDUsuario:      f.Number(1, opts.Users),
			Curtidas:       []core.Like{},
		}
		likes := 0
		if opts.MaxLikes > 0 {
			likes = f.Number(0, min(opts.MaxLikes, opts.Users))
		}
		ids := userIDs(opts.Users)
		f.ShuffleInts(ids)
		for _, userID := range ids[:likes] {
			story.Curtidas = append(story.Curtidas, core.Like{IDUsuario: userID})
		}
		db.Storys = append(db.Storys, story)
	}

	return db
}

func publishedAt(f *gofakeit.Faker, until time.Time) string {
	return f.DateRange(until.AddDate(0, -3, 0), until).Format("2006-01-02")
}

func userIDs(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i + 1
	}
	return ids
}
