package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/gpec-api/internal/application/auth"
	"github.com/jhoicas/gpec-api/internal/application/dto"
	"github.com/jhoicas/gpec-api/internal/domain"
	"github.com/jhoicas/gpec-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/gpec-api/pkg/jwt"
)

const testSecret = "auth-test-secret"

type fakeUsuarioRepo struct {
	byID map[string]*entity.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{byID: map[string]*entity.Usuario{}}
}

func (r *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	r.byID[u.ID] = u
	return nil
}

func (r *fakeUsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	return r.byID[id], nil
}

func (r *fakeUsuarioRepo) GetByCorreo(correo string) (*entity.Usuario, error) {
	for _, u := range r.byID {
		if u.Correo == correo {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) List() ([]*entity.Usuario, error) { return nil, nil }

func (r *fakeUsuarioRepo) Update(u *entity.Usuario) error {
	r.byID[u.ID] = u
	return nil
}

func (r *fakeUsuarioRepo) UpdateEstado(id, estado string) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Estado = estado
	return nil
}

func (r *fakeUsuarioRepo) UpdateContrasena(id, hash string) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.ContrasenaHash = hash
	return nil
}

func (r *fakeUsuarioRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

func newAuthUC(repo *fakeUsuarioRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:          testSecret,
		ExpMinutes:      60,
		ResetExpMinutes: 15,
		Issuer:          "gpec-test",
	})
}

func registrar(t *testing.T, uc *auth.AuthUseCase) *dto.UsuarioResponse {
	t.Helper()
	out, err := uc.Register(dto.RegisterRequest{
		Nombre:     "Ana",
		Apellido:   "Gómez",
		Correo:     "ana@example.com",
		Contrasena: "secreta123",
	})
	require.NoError(t, err)
	return out
}

func TestRegister(t *testing.T) {
	repo := newFakeUsuarioRepo()
	out := registrar(t, newAuthUC(repo))

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, entity.RolUsuarioFinal, out.Rol)
	assert.Equal(t, entity.EstadoActivo, out.Estado)

	// La contraseña se guarda hasheada con bcrypt, nunca en claro.
	u := repo.byID[out.ID]
	assert.NotEqual(t, "secreta123", u.ContrasenaHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.ContrasenaHash), []byte("secreta123")))
}

func TestRegister_CorreoDuplicado(t *testing.T) {
	uc := newAuthUC(newFakeUsuarioRepo())
	registrar(t, uc)

	_, err := uc.Register(dto.RegisterRequest{
		Nombre:     "Otra",
		Correo:     "ana@example.com",
		Contrasena: "otra456",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	uc := newAuthUC(newFakeUsuarioRepo())
	creado := registrar(t, uc)

	out, err := uc.Login(dto.LoginRequest{Correo: "ana@example.com", Contrasena: "secreta123"})
	require.NoError(t, err)
	assert.Equal(t, "Ana", out.Nombre)
	assert.Equal(t, entity.RolUsuarioFinal, out.Rol)

	// El token emitido es un token de sesión válido para el usuario.
	userID, correo, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, creado.ID, userID)
	assert.Equal(t, "ana@example.com", correo)
}

func TestLogin_CorreoNoRegistrado(t *testing.T) {
	uc := newAuthUC(newFakeUsuarioRepo())

	_, err := uc.Login(dto.LoginRequest{Correo: "nadie@example.com", Contrasena: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_ContrasenaIncorrecta(t *testing.T) {
	uc := newAuthUC(newFakeUsuarioRepo())
	registrar(t, uc)

	_, err := uc.Login(dto.LoginRequest{Correo: "ana@example.com", Contrasena: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CuentaInactiva(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := newAuthUC(repo)
	creado := registrar(t, uc)
	require.NoError(t, repo.UpdateEstado(creado.ID, entity.EstadoInactivo))

	_, err := uc.Login(dto.LoginRequest{Correo: "ana@example.com", Contrasena: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrInactiveUser)
}

// Con contraseña incorrecta la cuenta inactiva no se revela: gana el error de
// credenciales.
func TestLogin_InactivaConContrasenaIncorrecta(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := newAuthUC(repo)
	creado := registrar(t, uc)
	require.NoError(t, repo.UpdateEstado(creado.ID, entity.EstadoInactivo))

	_, err := uc.Login(dto.LoginRequest{Correo: "ana@example.com", Contrasena: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRecoverYResetPassword(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := newAuthUC(repo)
	registrar(t, uc)

	token, err := uc.Recover("ana@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	require.NoError(t, uc.ResetPassword(token, "nueva789"))

	// La contraseña anterior deja de funcionar y la nueva entra.
	_, err = uc.Login(dto.LoginRequest{Correo: "ana@example.com", Contrasena: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Correo: "ana@example.com", Contrasena: "nueva789"})
	assert.NoError(t, err)
}

func TestRecover_CorreoNoRegistrado(t *testing.T) {
	uc := newAuthUC(newFakeUsuarioRepo())

	_, err := uc.Recover("nadie@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// Un token de sesión no sirve para restablecer la contraseña.
func TestResetPassword_TokenDeSesion(t *testing.T) {
	uc := newAuthUC(newFakeUsuarioRepo())
	registrar(t, uc)

	out, err := uc.Login(dto.LoginRequest{Correo: "ana@example.com", Contrasena: "secreta123"})
	require.NoError(t, err)

	err = uc.ResetPassword(out.Token, "nueva789")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestResetPassword_TokenBasura(t *testing.T) {
	uc := newAuthUC(newFakeUsuarioRepo())
	assert.ErrorIs(t, uc.ResetPassword("token.basura", "nueva789"), domain.ErrInvalidToken)
}
