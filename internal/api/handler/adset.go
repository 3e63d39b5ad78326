package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/adset-builder-api/internal/domain"
	"github.com/vfg2006/adset-builder-api/internal/usecases/account"
	"github.com/vfg2006/adset-builder-api/internal/usecases/adsetting"
	"github.com/vfg2006/adset-builder-api/pkg/apiErrors"
)

// CreateAdSet cria um conjunto de anúncios na plataforma a partir dos
// parâmetros enviados pelo painel
func CreateAdSet(service adsetting.AdSetService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateAdSet")

		var params domain.AdSetParams
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		result, err := service.CreateAdSet(&params)
		if err != nil {
			writeAdSetError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(result); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// PreviewAdSet monta e devolve o payload que seria enviado à plataforma,
// sem criar nada
func PreviewAdSet(service adsetting.AdSetService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var params domain.AdSetParams
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		payload, err := service.PreviewAdSet(&params)
		if err != nil {
			writeAdSetError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// ListAccountAdSets lista o histórico de conjuntos criados para a conta
func ListAccountAdSets(service adsetting.AdSetService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		records, err := service.ListAdSets(id)
		if err != nil {
			writeAdSetError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(records); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// writeAdSetError traduz os erros do caso de uso de conjuntos para a resposta
// padronizada da API, preservando os detalhes campo a campo da validação
func writeAdSetError(w http.ResponseWriter, err error) {
	logrus.Error("Error on ad set operation:", err)

	// Erros de validação carregam a lista de campos rejeitados
	var validationErr *adsetting.ValidationError
	if errors.As(err, &validationErr) {
		apiErrors.WriteError(w, apiErrors.ErrAdSetInvalidParams, "Parâmetros inválidos para o conjunto de anúncios", validationErr.Fields)
		return
	}

	var adSetErr *adsetting.AdSetError
	if errors.As(err, &adSetErr) {
		apiErrors.WriteError(w, adSetErr.Code, adSetErr.Error(), map[string]interface{}{
			"account_id": adSetErr.AccountID,
			"error_type": adSetErr.Err.Error(),
		})
		return
	}

	// Erros vindos da resolução de credencial da conta
	var accountErr *account.AccountError
	if errors.As(err, &accountErr) {
		apiErrors.WriteError(w, accountErr.Code, accountErr.Error(), map[string]interface{}{
			"account_id": accountErr.AccountID,
			"error_type": accountErr.Err.Error(),
		})
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar conjunto de anúncios", nil)
}
