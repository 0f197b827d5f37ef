package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/royalty-manager-api/internal/domain"
	"github.com/vfg2006/royalty-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/royalty-manager-api/pkg/apiErrors"
	"github.com/vfg2006/royalty-manager-api/pkg/middleware"
)

// GetUser retorna informações do usuário por ID
func GetUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := userIDParam(w, r)
		if !ok {
			return
		}

		userClaims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok || (userClaims.UserID != id && userClaims.UserRoleID != domain.RoleAdmin) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para ver este usuário", nil)
			return
		}

		user, err := service.GetUserProfile(r.Context(), id)
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar usuário")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// CreateUser cria um novo usuário. No registro público o perfil é sempre o de leitura
func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateUser")

		var user domain.User
		if !decodeBody(w, r, &user) {
			return
		}

		if user.Name == "" || user.Email == "" || user.PasswordHash == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome, email e senha são obrigatórios", nil)
			return
		}

		userClaims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok || userClaims.UserRoleID != domain.RoleAdmin {
			user.RoleID = domain.RoleViewer
		}

		created, err := service.CreateUser(r.Context(), &user)
		if err != nil {
			writeServiceError(w, err, "Erro ao criar usuário")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

// ListUsers lista todos os usuários
func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := service.ListUser(r.Context())
		if err != nil {
			writeServiceError(w, err, "Erro ao buscar usuários")
			return
		}

		writeJSON(w, http.StatusOK, users)
	}
}

// UpdateUser atualiza informações do usuário
func UpdateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateUser")

		id, ok := userIDParam(w, r)
		if !ok {
			return
		}

		// O usuário pode editar apenas seu próprio perfil, a menos que seja admin
		userClaims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok || (userClaims.UserID != id && userClaims.UserRoleID != domain.RoleAdmin) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para editar este usuário", nil)
			return
		}

		var updateReq domain.UpdateUserRequest
		if !decodeBody(w, r, &updateReq) {
			return
		}
		updateReq.ID = id

		// Perfil, ativação e exclusão são restritos a administradores
		if userClaims.UserRoleID != domain.RoleAdmin && (updateReq.RoleID != nil || updateReq.Active != nil || updateReq.Deleted != nil) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem alterar perfil ou status do usuário", nil)
			return
		}

		if err := service.UpdateUser(r.Context(), &updateReq); err != nil {
			writeServiceError(w, err, "Erro ao atualizar usuário")
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
