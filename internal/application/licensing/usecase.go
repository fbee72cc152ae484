// Package licensing implementa o ciclo de vida da licença dos tenants:
// cadastro com trial, bloqueio/desbloqueio pelo operador, renovação de plano
// e impersonação de suporte.
package licensing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/application/dto"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/entity"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/license"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/internal/domain/repository"
	"github.com/tmaplicativosweb-ops/oficina-pro-saas/pkg/jwt"
)

// renewRetries tentativas do compare-and-swap da renovação antes de desistir.
const renewRetries = 3

// Defaults de cadastro: toda oficina nasce com estes valores e os ajusta depois
// na tela de configurações.
var (
	defaultWarrantyTerms = "Garantia de 90 dias."
	defaultMonthlyGoal   = decimal.NewFromInt(10000)
)

// JWTConfig configuração para emissão de tokens de sessão.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// RegistrationTxRunner executa o cadastro (Company + User ADMIN) numa única
// transação: ou os dois registros existem, ou nenhum.
type RegistrationTxRunner interface {
	RunRegistration(ctx context.Context, fn func(
		companies repository.CompanyRepository,
		users repository.UserRepository,
	) error) error
}

// UseCase controlador do ciclo de licenciamento.
type UseCase struct {
	companyRepo repository.CompanyRepository
	userRepo    repository.UserRepository
	txRunner    RegistrationTxRunner
	jwtCfg      JWTConfig
	trialDays   int
	now         func() time.Time
}

// NewUseCase constrói o controlador. trialDays <= 0 usa o padrão do catálogo.
func NewUseCase(
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
	txRunner RegistrationTxRunner,
	jwtCfg JWTConfig,
	trialDays int,
) *UseCase {
	if trialDays <= 0 {
		trialDays = license.TrialDays
	}
	return &UseCase{
		companyRepo: companyRepo,
		userRepo:    userRepo,
		txRunner:    txRunner,
		jwtCfg:      jwtCfg,
		trialDays:   trialDays,
		now:         time.Now,
	}
}

// RegisterCompany cria a oficina em trial (DEMO, ACTIVE, vence em trialDays) e
// o usuário ADMIN dono, atomicamente, e devolve a sessão autenticada.
// Devolve ErrEmailAlreadyExists se o e-mail já tem credencial e ErrDuplicate
// se o documento já está cadastrado.
func (uc *UseCase) RegisterCompany(ctx context.Context, in dto.RegisterCompanyRequest) (*dto.SessionResponse, error) {
	if in.CompanyName == "" || in.Document == "" || in.OwnerName == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if existing, err := uc.userRepo.GetByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	if existing, err := uc.companyRepo.GetByDocument(ctx, in.Document); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	company := &entity.Company{
		ID:            uuid.New().String(),
		Name:          in.CompanyName,
		Document:      in.Document,
		Email:         in.Email,
		WarrantyTerms: defaultWarrantyTerms,
		MonthlyGoal:   defaultMonthlyGoal,
		Plan:          entity.PlanDemo,
		Status:        entity.CompanyActive,
		CreatedAt:     now,
		ExpiresAt:     now.Add(time.Duration(uc.trialDays) * 24 * time.Hour),
		UpdatedAt:     now,
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    company.ID,
		Name:         in.OwnerName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = uc.txRunner.RunRegistration(ctx, func(
		companies repository.CompanyRepository,
		users repository.UserRepository,
	) error {
		if err := companies.Create(ctx, company); err != nil {
			return err
		}
		return users.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, company.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return uc.sessionResponse(token, user, company, false), nil
}

// Block marca a empresa como BLOCKED. Não altera plano nem vencimento.
// Idempotente: bloquear quem já está bloqueado não é erro.
func (uc *UseCase) Block(ctx context.Context, companyID string) error {
	return uc.setStatus(ctx, companyID, entity.CompanyBlocked)
}

// Unblock devolve a empresa a ACTIVE. Não estende nem redefine o vencimento:
// uma empresa desbloqueada porém vencida continua vencida para o motor de
// licença. Idempotente.
func (uc *UseCase) Unblock(ctx context.Context, companyID string) error {
	return uc.setStatus(ctx, companyID, entity.CompanyActive)
}

func (uc *UseCase) setStatus(ctx context.Context, companyID, status string) error {
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	if company.Status == status {
		return nil
	}
	return uc.companyRepo.UpdateStatus(ctx, companyID, status)
}

// Renew estende a licença: novo vencimento = max(vencimento atual, agora) +
// daysToAdd. Renovar uma licença já vencida parte de agora (sem crédito em
// dobro); renovar antes do vencimento soma ao prazo futuro. Sempre grava
// status ACTIVE: pagar reativa, inclusive quem estava BLOCKED.
//
// A escrita é um compare-and-swap sobre o expires_at lido; em corrida com
// outro operador a tentativa repete com o valor recarregado, até
// renewRetries vezes, e então devolve ErrConflict.
func (uc *UseCase) Renew(ctx context.Context, companyID, plan string, daysToAdd int) (*dto.CompanyResponse, error) {
	if !license.ValidPlan(plan) || daysToAdd <= 0 {
		return nil, domain.ErrInvalidInput
	}
	for attempt := 0; attempt < renewRetries; attempt++ {
		company, err := uc.companyRepo.GetByID(ctx, companyID)
		if err != nil {
			return nil, err
		}
		if company == nil {
			return nil, domain.ErrNotFound
		}
		now := uc.now()
		base := company.ExpiresAt
		if now.After(base) {
			base = now
		}
		newExpiresAt := base.Add(time.Duration(daysToAdd) * 24 * time.Hour)

		swapped, err := uc.companyRepo.CompareAndSetLicense(ctx, companyID, company.ExpiresAt, plan, entity.CompanyActive, newExpiresAt)
		if err != nil {
			return nil, err
		}
		if swapped {
			company.Plan = plan
			company.Status = entity.CompanyActive
			company.ExpiresAt = newExpiresAt
			return toCompanyResponse(company), nil
		}
	}
	return nil, domain.ErrConflict
}

// Impersonate devolve uma sessão de suporte com a identidade do ADMIN do
// tenant, sem mutar nenhum estado de licença. actorID é o usuário MASTER que
// pediu a impersonação (fica registrado no token). Devolve ErrNotFound se a
// empresa não existe e ErrAdminNotFound se ela não tem usuário ADMIN.
func (uc *UseCase) Impersonate(ctx context.Context, companyID, actorID string) (*dto.SessionResponse, error) {
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	admins, err := uc.userRepo.ListByCompanyAndRole(ctx, companyID, entity.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if len(admins) == 0 {
		return nil, domain.ErrAdminNotFound
	}
	admin := admins[0]

	token, err := jwt.GenerateImpersonated(uc.jwtCfg.Secret, admin.ID, company.ID, uc.jwtCfg.Issuer, actorID, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return uc.sessionResponse(token, admin, company, true), nil
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
