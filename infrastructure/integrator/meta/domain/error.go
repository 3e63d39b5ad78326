package metadomain

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message        string      `json:"message"`
	Type           string      `json:"type"`
	Code           int         `json:"code"`
	ErrorSubcode   int         `json:"error_subcode,omitempty"`
	ErrorUserTitle string      `json:"error_user_title,omitempty"`
	ErrorUserMsg   string      `json:"error_user_msg,omitempty"`
	FBTraceID      string      `json:"fbtrace_id"`
	ErrorData      interface{} `json:"error_data,omitempty"`
}

// IsTokenExpired verifica se o erro é de token expirado
func (e *ErrorResponse) IsTokenExpired() bool {
	// O código 190 representa "token expirado" nas respostas da API do Meta
	// Possíveis subcódigos relacionados a problemas de token: 460, 463, 467
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}

// IsInsufficientPermission verifica se o erro é de permissão insuficiente
func (e *ErrorResponse) IsInsufficientPermission() bool {
	// Códigos 200-299 são erros de permissão; o código 10 cobre permissões
	// de aplicativo não concedidas
	return e.Error.Code == 10 || (e.Error.Code >= 200 && e.Error.Code <= 299)
}

// IsInvalidParameter verifica se o erro é de parâmetro inválido
func (e *ErrorResponse) IsInvalidParameter() bool {
	return e.Error.Code == 100
}

// HumanHint retorna uma dica legível para códigos de erro conhecidos da Meta.
// Para códigos desconhecidos retorna string vazia e o envelope original é
// repassado sem anotação.
func (e *ErrorResponse) HumanHint() string {
	switch {
	case e.IsTokenExpired():
		return "O token de acesso expirou. Reautorize a conta antes de tentar novamente."
	case e.IsInsufficientPermission():
		return "O token não tem permissão para criar conjuntos de anúncios nesta conta."
	case e.IsInvalidParameter():
		return "A Meta rejeitou um dos parâmetros enviados. Verifique os campos do conjunto de anúncios."
	default:
		return ""
	}
}
