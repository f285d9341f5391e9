package gateway

// Request payloads. A string field is missing when empty and an id when
// zero; Premium is a pointer because false is a valid value.
type (
	Credentials struct {
		Email string `json:"email"`
		Senha string `json:"senha"`
	}

	NewUser struct {
		Nome             string `json:"nome"`
		Email            string `json:"email"`
		Senha            string `json:"senha"`
		Premium          *bool  `json:"premium"`
		ImagemPerfil     string `json:"imagemPerfil"`
		SenhaRecuperacao string `json:"senhaRecuperacao"`
	}

	UserPatch struct {
		Nome         string `json:"nome"`
		Email        string `json:"email"`
		Premium      *bool  `json:"premium"`
		ImagemPerfil string `json:"imagemPerfil"`
	}

	PasswordRecovery struct {
		Email   string `json:"email"`
		WordKey string `json:"wordKey"`
	}

	NewPassword struct {
		Senha string `json:"senha"`
	}

	// PostFields carries the fields shared by publicacoes and storys.
	PostFields struct {
		Descricao      string `json:"descricao"`
		DataPublicacao string `json:"dataPublicacao"`
		Imagem         string `json:"imagem"`
		Local          string `json:"local"`
		IDUsuario      int    `json:"idUsuario"`
	}

	LikeInput struct {
		IDUser  int `json:"idUser"`
		IDStory int `json:"idStory"`
	}
)

func (u NewUser) complete() bool {
	return u.Nome != "" && u.Email != "" && u.Senha != "" && u.Premium != nil && u.ImagemPerfil != ""
}

func (p PostFields) complete() bool {
	return p.Descricao != "" && p.DataPublicacao != "" && p.Imagem != "" && p.Local != "" && p.IDUsuario != 0
}
