package gateway

import (
	"context"
	"slices"

	"social-docstore/core"

	"github.com/sirupsen/logrus"
)

const msgPublicacaoNotFound = "Publicação não encontrada"

func findPublicacao(db *core.Database, id int) int {
	return slices.IndexFunc(db.Publicacoes, func(p core.Publicacao) bool { return p.ID == id })
}

func (g *Gateway) ListPublicacoes(ctx context.Context) (publicacoes []core.Publicacao, err error) {
	defer func() { observe(core.CollectionPublicacoes, "list", err) }()

	err = g.view(ctx, func(db *core.Database) error {
		publicacoes = db.Publicacoes
		return nil
	})
	return publicacoes, err
}

func (g *Gateway) CreatePublicacao(ctx context.Context, in PostFields) (publicacao core.Publicacao, err error) {
	defer func() { observe(core.CollectionPublicacoes, "create", err) }()

	if !in.complete() {
		return publicacao, core.NewValidationError(msgAllFieldsRequired)
	}
	err = g.update(ctx, func(db *core.Database) error {
		publicacao = core.Publicacao{
			ID:             db.NextPublicacaoID(),
			Descricao:      in.Descricao,
			DataPublicacao: in.DataPublicacao,
			Imagem:         in.Imagem,
			Local:          in.Local,
			IDUsuario:      in.IDUsuario,
		}
		db.Publicacoes = append(db.Publicacoes, publicacao)
		return nil
	})
	if err != nil {
		return core.Publicacao{}, err
	}
	logrus.WithFields(logrus.Fields{
		"publicacao_id": publicacao.ID,
		"user_id":       publicacao.IDUsuario,
	}).Info("Publicacao created")
	g.notifier.Notify(core.CollectionPublicacoes, ActionCreated, publicacao.ID, publicacao)
	return publicacao, nil
}

// UpdatePublicacao overwrites only the non-empty fields of in.
func (g *Gateway) UpdatePublicacao(ctx context.Context, id int, in PostFields) (publicacao core.Publicacao, err error) {
	defer func() { observe(core.CollectionPublicacoes, "update", err) }()

	err = g.update(ctx, func(db *core.Database) error {
		i := findPublicacao(db, id)
		if i == -1 {
			return core.NewNotFoundError(msgPublicacaoNotFound)
		}
		p := &db.Publicacoes[i]
		if in.Descricao != "" {
			p.Descricao = in.Descricao
		}
		if in.DataPublicacao != "" {
			p.DataPublicacao = in.DataPublicacao
		}
		if in.Imagem != "" {
			p.Imagem = in.Imagem
		}
		if in.Local != "" {
			p.Local = in.Local
		}
		if in.IDUsuario != 0 {
			p.IDUsuario = in.IDUsuario
		}
		publicacao = *p
		return nil
	})
	if err != nil {
		return core.Publicacao{}, err
	}
	g.notifier.Notify(core.CollectionPublicacoes, ActionUpdated, publicacao.ID, publicacao)
	return publicacao, nil
}

func (g *Gateway) DeletePublicacao(ctx context.Context, id int) (err error) {
	defer func() { observe(core.CollectionPublicacoes, "delete", err) }()

	err = g.update(ctx, func(db *core.Database) error {
		i := findPublicacao(db, id)
		if i == -1 {
			return core.NewNotFoundError(msgPublicacaoNotFound)
		}
		db.Publicacoes = slices.Delete(db.Publicacoes, i, i+1)
		return nil
	})
	if err != nil {
		return err
	}
	logrus.WithField("publicacao_id", id).Info("Publicacao deleted")
	g.notifier.Notify(core.CollectionPublicacoes, ActionDeleted, id, nil)
	return nil
}
