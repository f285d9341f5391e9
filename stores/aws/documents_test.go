package aws

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"social-docstore/core"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectAPI struct {
	objects map[string][]byte
	putErr  error
}

func (f *fakeObjectAPI) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeObjectAPI) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	data, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key)] = data
	return &s3.PutObjectOutput{}, nil
}

func TestDocumentStore_RoundTripWithPrefix(t *testing.T) {
	api := &fakeObjectAPI{objects: map[string][]byte{}}
	store := newDocumentStore(api, "bucket", "social")
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "db.json", &core.Document{Data: *bytes.NewBufferString(`{"x":1}`)}))
	assert.Contains(t, api.objects, "bucket/social/db.json")

	doc, err := store.FindID(ctx, "db.json")
	require.NoError(t, err)
	assert.Equal(t, `{"x":1}`, doc.Data.String())
}

func TestDocumentStore_FindMissing(t *testing.T) {
	store := newDocumentStore(&fakeObjectAPI{objects: map[string][]byte{}}, "bucket", "")

	_, err := store.FindID(context.Background(), "db.json")
	assert.ErrorIs(t, err, core.ErrDocumentNotFound)
}

func TestDocumentStore_SaveError(t *testing.T) {
	cause := errors.New("access denied")
	store := newDocumentStore(&fakeObjectAPI{objects: map[string][]byte{}, putErr: cause}, "bucket", "")

	err := store.Save(context.Background(), "db.json", &core.Document{})
	assert.ErrorIs(t, err, cause)
}
