package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrAdminNotFound      = errors.New("admin não encontrado para a empresa")
	ErrEmailAlreadyExists = errors.New("o e-mail já está cadastrado")
	ErrInvalidCredentials = errors.New("e-mail ou senha inválidos")
	ErrAccessBlocked      = errors.New("acesso bloqueado pelo administrador")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")
	ErrConflict           = errors.New("conflito com o estado atual")
)
