// Package auth contém os casos de uso de autenticação: login e restauração de
// sessão. O cadastro de oficinas vive em licensing, porque cria o tenant.
package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/application/dto"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/entity"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/license"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/repository"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/pkg/jwt"
)

// JWTConfig configuração para emissão de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticação.
type UseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	jwtCfg      JWTConfig
	now         func() time.Time
}

// NewUseCase constrói o caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, companyRepo repository.CompanyRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, companyRepo: companyRepo, jwtCfg: jwtCfg, now: time.Now}
}

// Login verifica e-mail/senha e devolve a sessão com o snapshot da empresa.
// Tenant com status BLOCKED recebe ErrAccessBlocked, distinto de credencial
// errada: o usuário deve procurar o suporte, não redigitar a senha. Licença
// vencida NÃO impede o login; o gate de acesso decide página a página.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.SessionResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	var company *entity.Company
	if user.CompanyID != "" {
		company, err = uc.companyRepo.GetByID(ctx, user.CompanyID)
		if err != nil {
			return nil, err
		}
		if company != nil && company.Status == entity.CompanyBlocked {
			return nil, domain.ErrAccessBlocked
		}
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.CompanyID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return uc.sessionResponse(token, user, company, false), nil
}

// RestoreSession reconstrói a sessão a partir de um token já validado pelo
// middleware: recarrega usuário e empresa do store para que o cliente veja o
// estado de licença mais recente, não o de quando logou.
func (uc *UseCase) RestoreSession(ctx context.Context, userID string, impersonated bool) (*dto.SessionResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	var company *entity.Company
	if user.CompanyID != "" {
		company, err = uc.companyRepo.GetByID(ctx, user.CompanyID)
		if err != nil {
			return nil, err
		}
	}
	return uc.sessionResponse("", user, company, impersonated), nil
}

func (uc *UseCase) sessionResponse(token string, user *entity.User, company *entity.Company, impersonated bool) *dto.SessionResponse {
	resp := &dto.SessionResponse{
		Token: token,
		User: dto.UserResponse{
			ID:        user.ID,
			CompanyID: user.CompanyID,
			Name:      user.Name,
			Email:     user.Email,
			Role:      user.Role,
		},
		Impersonated: impersonated,
	}
	if company != nil {
		resp.Company = toCompanyResponse(company)
		ent := license.Evaluate(company, uc.now())
		resp.Entitlement = &dto.EntitlementResponse{
			DaysRemaining: ent.DaysRemaining,
			Expired:       ent.Expired,
			ExpiringSoon:  ent.ExpiringSoon,
			Blocked:       ent.Blocked,
			AccessDenied:  ent.AccessDenied,
		}
	}
	return resp
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:            c.ID,
		Name:          c.Name,
		Document:      c.Document,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		WarrantyTerms: c.WarrantyTerms,
		MonthlyGoal:   c.MonthlyGoal,
		Plan:          c.Plan,
		Status:        c.Status,
		CreatedAt:     c.CreatedAt,
		ExpiresAt:     c.ExpiresAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
