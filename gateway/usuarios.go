package gateway

import (
	"context"
	"slices"

	"social-docstore/core"

	"github.com/sirupsen/logrus"
)

const (
	msgAllFieldsRequired  = "Todos os campos são obrigatórios"
	msgUserNotFound       = "Usuário não encontrado"
	msgCredentialsMissing = "Email e senha são obrigatórios!"
	msgInvalidCredentials = "Credenciais inválidas"
	msgWrongWordKey       = "Palavra chave incorreta.."
)

func findUser(db *core.Database, id int) int {
	return slices.IndexFunc(db.Usuarios, func(u core.User) bool { return u.ID == id })
}

// Authenticate succeeds when a user with exactly this email and password exists.
func (g *Gateway) Authenticate(ctx context.Context, in Credentials) (err error) {
	defer func() { observe(core.CollectionUsuarios, "authenticate", err) }()

	if in.Email == "" || in.Senha == "" {
		return core.NewValidationError(msgCredentialsMissing)
	}
	return g.view(ctx, func(db *core.Database) error {
		for _, u := range db.Usuarios {
			if u.Email == in.Email && u.Senha == in.Senha {
				return nil
			}
		}
		logrus.Debug("Login rejected")
		return core.NewUnauthorizedError(msgInvalidCredentials)
	})
}

func (g *Gateway) CreateUser(ctx context.Context, in NewUser) (user core.User, err error) {
	defer func() { observe(core.CollectionUsuarios, "create", err) }()

	if !in.complete() {
		return user, core.NewValidationError(msgAllFieldsRequired)
	}
	err = g.update(ctx, func(db *core.Database) error {
		user = core.User{
			ID:               db.NextUserID(),
			Nome:             in.Nome,
			Email:            in.Email,
			Senha:            in.Senha,
			Premium:          *in.Premium,
			ImagemPerfil:     in.ImagemPerfil,
			SenhaRecuperacao: in.SenhaRecuperacao,
		}
		db.Usuarios = append(db.Usuarios, user)
		return nil
	})
	if err != nil {
		return core.User{}, err
	}
	logrus.WithField("user_id", user.ID).Info("User created")
	g.notifier.Notify(core.CollectionUsuarios, ActionCreated, user.ID, user.Public())
	return user, nil
}

// ListUsers returns every user without password or recovery word.
func (g *Gateway) ListUsers(ctx context.Context) (users []core.PublicUser, err error) {
	defer func() { observe(core.CollectionUsuarios, "list", err) }()

	err = g.view(ctx, func(db *core.Database) error {
		users = make([]core.PublicUser, 0, len(db.Usuarios))
		for _, u := range db.Usuarios {
			users = append(users, u.Public())
		}
		return nil
	})
	return users, err
}

// UpdateUser overwrites only the fields present in the patch.
func (g *Gateway) UpdateUser(ctx context.Context, id int, in UserPatch) (user core.User, err error) {
	defer func() { observe(core.CollectionUsuarios, "update", err) }()

	err = g.update(ctx, func(db *core.Database) error {
		i := findUser(db, id)
		if i == -1 {
			return core.NewNotFoundError(msgUserNotFound)
		}
		u := &db.Usuarios[i]
		if in.Nome != "" {
			u.Nome = in.Nome
		}
		if in.Email != "" {
			u.Email = in.Email
		}
		if in.Premium != nil {
			u.Premium = *in.Premium
		}
		if in.ImagemPerfil != "" {
			u.ImagemPerfil = in.ImagemPerfil
		}
		user = *u
		return nil
	})
	if err != nil {
		return core.User{}, err
	}
	g.notifier.Notify(core.CollectionUsuarios, ActionUpdated, user.ID, user.Public())
	return user, nil
}

func (g *Gateway) DeleteUser(ctx context.Context, id int) (err error) {
	defer func() { observe(core.CollectionUsuarios, "delete", err) }()

	err = g.update(ctx, func(db *core.Database) error {
		i := findUser(db, id)
		if i == -1 {
			return core.NewNotFoundError(msgUserNotFound)
		}
		db.Usuarios = slices.Delete(db.Usuarios, i, i+1)
		return nil
	})
	if err != nil {
		return err
	}
	logrus.WithField("user_id", id).Info("User deleted")
	g.notifier.Notify(core.CollectionUsuarios, ActionDeleted, id, nil)
	return nil
}

// RecoverPassword returns the full user record, password included, when the
// recovery word matches the one stored for email.
func (g *Gateway) RecoverPassword(ctx context.Context, in PasswordRecovery) (user core.User, err error) {
	defer func() { observe(core.CollectionUsuarios, "recover_password", err) }()

	if in.Email == "" || in.WordKey == "" {
		return user, core.NewValidationError(msgAllFieldsRequired)
	}
	err = g.view(ctx, func(db *core.Database) error {
		i := slices.IndexFunc(db.Usuarios, func(u core.User) bool { return u.Email == in.Email })
		if i == -1 {
			return core.NewNotFoundError(msgUserNotFound)
		}
		if db.Usuarios[i].SenhaRecuperacao != in.WordKey {
			return core.NewUnauthorizedError(msgWrongWordKey)
		}
		user = db.Usuarios[i]
		return nil
	})
	if err != nil {
		return core.User{}, err
	}
	return user, nil
}

// SetPassword replaces the password when one is given; an empty password
// leaves the record untouched.
func (g *Gateway) SetPassword(ctx context.Context, id int, in NewPassword) (user core.User, err error) {
	defer func() { observe(core.CollectionUsuarios, "set_password", err) }()

	err = g.update(ctx, func(db *core.Database) error {
		i := findUser(db, id)
		if i == -1 {
			return core.NewNotFoundError(msgUserNotFound)
		}
		if in.Senha != "" {
			db.Usuarios[i].Senha = in.Senha
		}
		user = db.Usuarios[i]
		return nil
	})
	if err != nil {
		return core.User{}, err
	}
	g.notifier.Notify(core.CollectionUsuarios, ActionUpdated, user.ID, user.Public())
	return user, nil
}
