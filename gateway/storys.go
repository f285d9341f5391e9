package gateway

import (
	"context"
	"slices"

	"social-docstore/core"

	"github.com/sirupsen/logrus"
)

const (
	msgStoryNotFound = "Story não encontrado"
	msgAlreadyLiked  = "Usuário já curtiu este story"
)

func (g *Gateway) ListStorys(ctx context.Context) (storys []core.Story, err error) {
	defer func() { observe(core.CollectionStorys, "list", err) }()

	err = g.view(ctx, func(db *core.Database) error {
		storys = db.Storys
		return nil
	})
	return storys, err
}

// CreateStory numbers the story after the last story. New stories start
// with an empty like list.
func (g *Gateway) CreateStory(ctx context.Context, in PostFields) (story core.Story, err error) {
	defer func() { observe(core.CollectionStorys, "create", err) }()

	if !in.complete() {
		return story, core.NewValidationError(msgAllFieldsRequired)
	}
	err = g.update(ctx, func(db *core.Database) error {
		story = core.Story{
			ID:             db.NextStoryID(),
			Descricao:      in.Descricao,
			DataPublicacao: in.DataPublicacao,
			Imagem:         in.Imagem,
			Local:          in.Local,
			IDUsuario:      in.IDUsuario,
			Curtidas:       []core.Like{},
		}
		db.Storys = append(db.Storys, story)
		return nil
	})
	if err != nil {
		return core.Story{}, err
	}
	logrus.WithField("story_id", story.ID).Info("Story created")
	g.notifier.Notify(core.CollectionStorys, ActionCreated, story.ID, story)
	return story, nil
}

// LikeStory records one like per user and story.
func (g *Gateway) LikeStory(ctx context.Context, in LikeInput) (story core.Story, err error) {
	defer func() { observe(core.CollectionStorys, "like", err) }()

	if in.IDUser == 0 || in.IDStory == 0 {
		return story, core.NewValidationError(msgAllFieldsRequired)
	}
	err = g.update(ctx, func(db *core.Database) error {
		i := slices.IndexFunc(db.Storys, func(s core.Story) bool { return s.ID == in.IDStory })
		if i == -1 {
			return core.NewNotFoundError(msgStoryNotFound)
		}
		s := &db.Storys[i]
		if s.HasLike(in.IDUser) {
			return core.NewConflictError(msgAlreadyLiked)
		}
		s.Curtidas = append(s.Curtidas, core.Like{IDUsuario: in.IDUser})
		story = *s
		return nil
	})
	if err != nil {
		return core.Story{}, err
	}
	logrus.WithFields(logrus.Fields{
		"story_id": story.ID,
		"user_id":  in.IDUser,
	}).Info("Story liked")
	g.notifier.Notify(core.CollectionStorys, ActionLiked, story.ID, story)
	return story, nil
}
