package gateway

import (
	"context"
	"testing"

	"social-docstore/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateStory_NumbersFromStorys(t *testing.T) {
	db := core.NewDatabase()
	db.Publicacoes = []core.Publicacao{{ID: 40}}
	db.Storys = []core.Story{{ID: 1}, {ID: 2}, {ID: 3}}
	g, _, _ := newTestGateway(t, db)

	s, err := g.CreateStory(context.Background(), validPost())
	require.NoError(t, err)
	assert.Equal(t, 4, s.ID)
	assert.NotNil(t, s.Curtidas)
	assert.Empty(t, s.Curtidas)

	empty, _, _ := newTestGateway(t, nil)
	s, err = empty.CreateStory(context.Background(), validPost())
	require.NoError(t, err)
	assert.Equal(t, 1, s.ID)
}

func TestCreateStory_MissingField(t *testing.T) {
	g, _, _ := newTestGateway(t, nil)

	in := validPost()
	in.Imagem = ""
	_, err := g.CreateStory(context.Background(), in)
	assert.Equal(t, core.CodeValidation, core.CodeOf(err))
}

func TestLikeStory(t *testing.T) {
	db := core.NewDatabase()
	db.Storys = []core.Story{{ID: 1, Descricao: "s"}}
	g, store, notifier := newTestGateway(t, db)
	ctx := context.Background()

	s, err := g.LikeStory(ctx, LikeInput{IDUser: 7, IDStory: 1})
	require.NoError(t, err)
	assert.Equal(t, []core.Like{{IDUsuario: 7}}, s.Curtidas)

	_, err = g.LikeStory(ctx, LikeInput{IDUser: 7, IDStory: 1})
	assert.Equal(t, core.CodeConflict, core.CodeOf(err))
	assert.Len(t, loadDatabase(t, store).Storys[0].Curtidas, 1)

	s, err = g.LikeStory(ctx, LikeInput{IDUser: 8, IDStory: 1})
	require.NoError(t, err)
	assert.Len(t, s.Curtidas, 2)

	_, err = g.LikeStory(ctx, LikeInput{IDUser: 7, IDStory: 9})
	assert.Equal(t, core.CodeNotFound, core.CodeOf(err))

	_, err = g.LikeStory(ctx, LikeInput{IDStory: 1})
	assert.Equal(t, core.CodeValidation, core.CodeOf(err))

	assert.Equal(t, []recordedEvent{
		{core.CollectionStorys, ActionLiked, 1},
		{core.CollectionStorys, ActionLiked, 1},
	}, notifier.events)
}

func TestListStorys(t *testing.T) {
	db := core.NewDatabase()
	db.Storys = []core.Story{{ID: 2, Curtidas: []core.Like{{IDUsuario: 1}}}, {ID: 3}}
	g, _, _ := newTestGateway(t, db)

	list, err := g.ListStorys(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Len(t, list[0].Curtidas, 1)
	assert.NotNil(t, list[1].Curtidas)
}
