package core

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type (
	User struct {
		ID               int    `json:"id"`
		Nome             string `json:"nome"`
		Email            string `json:"email"`
		Senha            string `json:"senha"`
		Premium          bool   `json:"premium"`
		ImagemPerfil     string `json:"imagemPerfil"`
		SenhaRecuperacao string `json:"senhaRecuperacao,omitempty"`
		Extra            Fields `json:"-"`
	}

	// PublicUser is the listing view of a User: credentials are never part of it.
	PublicUser struct {
		ID           int    `json:"id"`
		Nome         string `json:"nome"`
		Email        string `json:"email"`
		Premium      bool   `json:"premium"`
		ImagemPerfil string `json:"imagemPerfil"`
	}

	Publicacao struct {
		ID             int    `json:"id"`
		Descricao      string `json:"descricao"`
		DataPublicacao string `json:"dataPublicacao"`
		Imagem         string `json:"imagem"`
		Local          string `json:"local"`
		IDUsuario      int    `json:"idUsuario"`
		Extra          Fields `json:"-"`
	}

	Like struct {
		IDUsuario int    `json:"idUsuario"`
		Extra     Fields `json:"-"`
	}

	Story struct {
		ID             int    `json:"id"`
		Descricao      string `json:"descricao"`
		DataPublicacao string `json:"dataPublicacao"`
		Imagem         string `json:"imagem"`
		Local          string `json:"local"`
		IDUsuario      int    `json:"idUsuario"`
		Curtidas       []Like `json:"curtidas"`
		Extra          Fields `json:"-"`
	}

	// Database is the root JSON document holding every collection. Records
	// keep keys they do not declare in Extra, and so does the root.
	Database struct {
		Usuarios    []User       `json:"usuarios"`
		Publicacoes []Publicacao `json:"publicacoes"`
		Storys      []Story      `json:"storys"`
		Extra       Fields       `json:"-"`
	}
)

// Collection names as they appear in the persisted document.
const (
	CollectionUsuarios    = "usuarios"
	CollectionPublicacoes = "publicacoes"
	CollectionStorys      = "storys"
)

func (u *User) fields() []field {
	return []field{
		{key: "id", value: &u.ID},
		{key: "nome", value: &u.Nome},
		{key: "email", value: &u.Email},
		{key: "senha", value: &u.Senha},
		{key: "premium", value: &u.Premium},
		{key: "imagemPerfil", value: &u.ImagemPerfil},
		{key: "senhaRecuperacao", value: &u.SenhaRecuperacao, omitEmpty: true},
	}
}

func (u *User) UnmarshalJSON(data []byte) (err error) {
	u.Extra, err = decodeFields(data, u.fields())
	return err
}

func (u User) MarshalJSON() ([]byte, error) {
	return encodeFields(u.fields(), u.Extra)
}

func (p *Publicacao) fields() []field {
	return []field{
		{key: "id", value: &p.ID},
		{key: "descricao", value: &p.Descricao},
		{key: "dataPublicacao", value: &p.DataPublicacao},
		{key: "imagem", value: &p.Imagem},
		{key: "local", value: &p.Local},
		{key: "idUsuario", value: &p.IDUsuario},
	}
}

func (p *Publicacao) UnmarshalJSON(data []byte) (err error) {
	p.Extra, err = decodeFields(data, p.fields())
	return err
}

func (p Publicacao) MarshalJSON() ([]byte, error) {
	return encodeFields(p.fields(), p.Extra)
}

func (l *Like) UnmarshalJSON(data []byte) (err error) {
	l.Extra, err = decodeFields(data, []field{{key: "idUsuario", value: &l.IDUsuario}})
	return err
}

func (l Like) MarshalJSON() ([]byte, error) {
	return encodeFields([]field{{key: "idUsuario", value: &l.IDUsuario}}, l.Extra)
}

func (s *Story) fields() []field {
	return []field{
		{key: "id", value: &s.ID},
		{key: "descricao", value: &s.Descricao},
		{key: "dataPublicacao", value: &s.DataPublicacao},
		{key: "imagem", value: &s.Imagem},
		{key: "local", value: &s.Local},
		{key: "idUsuario", value: &s.IDUsuario},
		{key: "curtidas", value: &s.Curtidas},
	}
}

func (s *Story) UnmarshalJSON(data []byte) (err error) {
	s.Extra, err = decodeFields(data, s.fields())
	return err
}

func (s Story) MarshalJSON() ([]byte, error) {
	return encodeFields(s.fields(), s.Extra)
}

// UnmarshalJSON decodes the three collections strictly: a collection that
// is not an array of objects fails the load instead of being dropped on the
// next write. Other root keys are kept as they are.
func (db *Database) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	collections := map[string]any{
		CollectionUsuarios:    &db.Usuarios,
		CollectionPublicacoes: &db.Publicacoes,
		CollectionStorys:      &db.Storys,
	}
	db.Extra = nil
	for key, value := range raw {
		ptr, ok := collections[key]
		if !ok {
			if db.Extra == nil {
				db.Extra = Fields{}
			}
			db.Extra[key] = value
			continue
		}
		if err := json.Unmarshal(value, ptr); err != nil {
			return fmt.Errorf("collection %s: %w", key, err)
		}
	}
	return nil
}

func (db Database) MarshalJSON() ([]byte, error) {
	return encodeFields([]field{
		{key: CollectionUsuarios, value: &db.Usuarios},
		{key: CollectionPublicacoes, value: &db.Publicacoes},
		{key: CollectionStorys, value: &db.Storys},
	}, db.Extra)
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:           u.ID,
		Nome:         u.Nome,
		Email:        u.Email,
		Premium:      u.Premium,
		ImagemPerfil: u.ImagemPerfil,
	}
}

// HasLike reports whether userID already liked the story.
func (s Story) HasLike(userID int) bool {
	for _, like := range s.Curtidas {
		if like.IDUsuario == userID {
			return true
		}
	}
	return false
}

// NewDatabase returns a document with every collection present and empty.
func NewDatabase() *Database {
	db := &Database{}
	db.normalize()
	return db
}

// normalize replaces nil collections with empty ones so they encode as [].
func (db *Database) normalize() {
	if db.Usuarios == nil {
		db.Usuarios = []User{}
	}
	if db.Publicacoes == nil {
		db.Publicacoes = []Publicacao{}
	}
	if db.Storys == nil {
		db.Storys = []Story{}
	}
	for i := range db.Storys {
		if db.Storys[i].Curtidas == nil {
			db.Storys[i].Curtidas = []Like{}
		}
		if string(db.Storys[i].Extra["curtidas"]) == "null" {
			delete(db.Storys[i].Extra, "curtidas")
		}
	}
}

// DecodeDatabase parses a persisted document.
func DecodeDatabase(document *Document) (*Database, error) {
	db := &Database{}
	if err := json.Unmarshal(document.Data.Bytes(), db); err != nil {
		return nil, fmt.Errorf("failed to decode database document: %w", err)
	}
	db.normalize()
	return db, nil
}

// Encode serializes the database the way it is written to disk, indented
// with two spaces.
func (db *Database) Encode() (*Document, error) {
	db.normalize()
	data, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode database document: %w", err)
	}
	return &Document{Data: *bytes.NewBuffer(data)}, nil
}

// NextUserID, NextPublicacaoID and NextStoryID follow the legacy numbering
// rule: one past the id of the last element, or 1 for an empty collection.
// Deleting the last element and inserting again reuses its id.
func (db *Database) NextUserID() int {
	if n := len(db.Usuarios); n > 0 {
		return db.Usuarios[n-1].ID + 1
	}
	return 1
}

func (db *Database) NextPublicacaoID() int {
	if n := len(db.Publicacoes); n > 0 {
		return db.Publicacoes[n-1].ID + 1
	}
	return 1
}

func (db *Database) NextStoryID() int {
	if n := len(db.Storys); n > 0 {
		return db.Storys[n-1].ID + 1
	}
	return 1
}
