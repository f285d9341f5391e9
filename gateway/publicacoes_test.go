package gateway

import (
	"context"
	"testing"

	"social-docstore/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPost() PostFields {
	return PostFields{Descricao: "praia", DataPublicacao: "2024-05-01", Imagem: "p.png", Local: "Recife", IDUsuario: 1}
}

func TestCreatePublicacao_AssignsID(t *testing.T) {
	db := core.NewDatabase()
	db.Publicacoes = []core.Publicacao{{ID: 1}, {ID: 2}, {ID: 3}}
	g, _, _ := newTestGateway(t, db)

	p, err := g.CreatePublicacao(context.Background(), validPost())
	require.NoError(t, err)
	assert.Equal(t, 4, p.ID)
	assert.Equal(t, "Recife", p.Local)

	empty, _, _ := newTestGateway(t, nil)
	p, err = empty.CreatePublicacao(context.Background(), validPost())
	require.NoError(t, err)
	assert.Equal(t, 1, p.ID)
}

func TestCreatePublicacao_MissingField(t *testing.T) {
	g, _, _ := newTestGateway(t, nil)

	in := validPost()
	in.IDUsuario = 0
	_, err := g.CreatePublicacao(context.Background(), in)
	assert.Equal(t, core.CodeValidation, core.CodeOf(err))
}

func TestDeletePublicacao_KeepsRemainingIDs(t *testing.T) {
	g, _, _ := newTestGateway(t, nil)
	ctx := context.Background()

	first, err := g.CreatePublicacao(ctx, validPost())
	require.NoError(t, err)
	second, err := g.CreatePublicacao(ctx, validPost())
	require.NoError(t, err)

	require.NoError(t, g.DeletePublicacao(ctx, first.ID))

	list, err := g.ListPublicacoes(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, second, list[0])

	assert.Equal(t, core.CodeNotFound, core.CodeOf(g.DeletePublicacao(ctx, first.ID)))
}

func TestUpdatePublicacao(t *testing.T) {
	db := core.NewDatabase()
	db.Publicacoes = []core.Publicacao{{ID: 1, Descricao: "a", DataPublicacao: "d", Imagem: "i", Local: "l", IDUsuario: 3}}
	g, store, notifier := newTestGateway(t, db)
	ctx := context.Background()

	p, err := g.UpdatePublicacao(ctx, 1, PostFields{Descricao: "b", IDUsuario: 4})
	require.NoError(t, err)
	assert.Equal(t, core.Publicacao{ID: 1, Descricao: "b", DataPublicacao: "d", Imagem: "i", Local: "l", IDUsuario: 4}, p)
	assert.Equal(t, p, loadDatabase(t, store).Publicacoes[0])
	assert.Len(t, notifier.events, 1)

	unchanged, err := g.UpdatePublicacao(ctx, 1, PostFields{})
	require.NoError(t, err)
	assert.Equal(t, p, unchanged)

	_, err = g.UpdatePublicacao(ctx, 2, PostFields{Descricao: "x"})
	assert.Equal(t, core.CodeNotFound, core.CodeOf(err))
}
