package crm_service

import (
	"travel-crm-service/domain/model"
)

// CreateSupplierRequest represents the request payload for creating a supplier
type CreateSupplierRequest struct {
	Name  string `json:"nome" validate:"required,min=1,max=255"`
	CNPJ  string `json:"cnpj,omitempty" validate:"omitempty,max=18"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
	Phone string `json:"telefone,omitempty" validate:"omitempty,max=30"`
}

// SupplierResponse represents the response payload for a supplier
type SupplierResponse struct {
	ID    string `json:"id"`
	Name  string `json:"nome"`
	CNPJ  string `json:"cnpj,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"telefone,omitempty"`
}

// CreateCategoryRequest represents the request payload for creating a category
type CreateCategoryRequest struct {
	Name string `json:"nome" validate:"required,min=1,max=100"`
	Kind string `json:"tipo" validate:"required,oneof=CUSTO VENDA"`
}

// CategoryResponse represents the response payload for a category
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"nome"`
	Kind string `json:"tipo"`
}

// CreatePaymentMethodRequest represents the request payload for creating a payment method
type CreatePaymentMethodRequest struct {
	Name string `json:"nome" validate:"required,min=1,max=100"`
}

// PaymentMethodResponse represents the response payload for a payment method
type PaymentMethodResponse struct {
	ID   string `json:"id"`
	Name string `json:"nome"`
}

// CreateCompanyRequest represents the request payload for creating an agency company
type CreateCompanyRequest struct {
	Name         string `json:"nome" validate:"required,min=1,max=255"`
	CNPJ         string `json:"cnpj,omitempty" validate:"omitempty,max=18"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	Phone        string `json:"telefone,omitempty" validate:"omitempty,max=30"`
	LogoURL      string `json:"logo_url,omitempty" validate:"omitempty,url"`
	PrimaryColor string `json:"cor_primaria,omitempty" validate:"omitempty,max=20"`
	Address      string `json:"endereco,omitempty" validate:"omitempty,max=500"`
	PixKey       string `json:"chave_pix,omitempty" validate:"omitempty,max=255"`
	City         string `json:"cidade,omitempty" validate:"omitempty,max=100"`
}

// UpdateCompanyRequest represents the request payload for updating an agency company
type UpdateCompanyRequest struct {
	ID           string `json:"-" validate:"required,ulid"`
	Name         string `json:"nome" validate:"required,min=1,max=255"`
	CNPJ         string `json:"cnpj,omitempty" validate:"omitempty,max=18"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	Phone        string `json:"telefone,omitempty" validate:"omitempty,max=30"`
	LogoURL      string `json:"logo_url,omitempty" validate:"omitempty,url"`
	PrimaryColor string `json:"cor_primaria,omitempty" validate:"omitempty,max=20"`
	Address      string `json:"endereco,omitempty" validate:"omitempty,max=500"`
	PixKey       string `json:"chave_pix,omitempty" validate:"omitempty,max=255"`
	City         string `json:"cidade,omitempty" validate:"omitempty,max=100"`
}

// CompanyResponse represents the response payload for an agency company
type CompanyResponse struct {
	ID           string `json:"id"`
	Name         string `json:"nome"`
	CNPJ         string `json:"cnpj,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"telefone,omitempty"`
	LogoURL      string `json:"logo_url,omitempty"`
	PrimaryColor string `json:"cor_primaria,omitempty"`
	Address      string `json:"endereco,omitempty"`
	PixKey       string `json:"chave_pix,omitempty"`
	City         string `json:"cidade,omitempty"`
}

// AirlineResponse represents the response payload for an airline
type AirlineResponse struct {
	ID       string `json:"id"`
	Name     string `json:"nome"`
	IATACode string `json:"codigo_iata"`
}

// CreateSupplierRequestToModel converts CreateSupplierRequest to model.Supplier
func CreateSupplierRequestToModel(req *CreateSupplierRequest) *model.Supplier {
	return &model.Supplier{
		Name:  req.Name,
		CNPJ:  req.CNPJ,
		Email: req.Email,
		Phone: req.Phone,
	}
}

// SupplierModelToResponse converts model.Supplier to SupplierResponse
func SupplierModelToResponse(supplier *model.Supplier) *SupplierResponse {
	return &SupplierResponse{
		ID:    supplier.ID,
		Name:  supplier.Name,
		CNPJ:  supplier.CNPJ,
		Email: supplier.Email,
		Phone: supplier.Phone,
	}
}

// SupplierModelsToResponses converts slice of model.Supplier to responses
func SupplierModelsToResponses(suppliers []*model.Supplier) []SupplierResponse {
	responses := make([]SupplierResponse, len(suppliers))
	for i, supplier := range suppliers {
		responses[i] = *SupplierModelToResponse(supplier)
	}
	return responses
}

// CreateCategoryRequestToModel converts CreateCategoryRequest to model.Category
func CreateCategoryRequestToModel(req *CreateCategoryRequest) *model.Category {
	return &model.Category{
		Name: req.Name,
		Kind: req.Kind,
	}
}

// CategoryModelToResponse converts model.Category to CategoryResponse
func CategoryModelToResponse(category *model.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:   category.ID,
		Name: category.Name,
		Kind: category.Kind,
	}
}

// CategoryModelsToResponses converts slice of model.Category to responses
func CategoryModelsToResponses(categories []*model.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = *CategoryModelToResponse(category)
	}
	return responses
}

// CreatePaymentMethodRequestToModel converts CreatePaymentMethodRequest to model.PaymentMethod
func CreatePaymentMethodRequestToModel(req *CreatePaymentMethodRequest) *model.PaymentMethod {
	return &model.PaymentMethod{
		Name: req.Name,
	}
}

// PaymentMethodModelToResponse converts model.PaymentMethod to PaymentMethodResponse
func PaymentMethodModelToResponse(method *model.PaymentMethod) *PaymentMethodResponse {
	return &PaymentMethodResponse{
		ID:   method.ID,
		Name: method.Name,
	}
}

// PaymentMethodModelsToResponses converts slice of model.PaymentMethod to responses
func PaymentMethodModelsToResponses(methods []*model.PaymentMethod) []PaymentMethodResponse {
	responses := make([]PaymentMethodResponse, len(methods))
	for i, method := range methods {
		responses[i] = *PaymentMethodModelToResponse(method)
	}
	return responses
}

// CreateCompanyRequestToModel converts CreateCompanyRequest to model.Company
func CreateCompanyRequestToModel(req *CreateCompanyRequest) *model.Company {
	return &model.Company{
		Name:         req.Name,
		CNPJ:         req.CNPJ,
		Email:        req.Email,
		Phone:        req.Phone,
		LogoURL:      req.LogoURL,
		PrimaryColor: req.PrimaryColor,
		Address:      req.Address,
		PixKey:       req.PixKey,
		City:         req.City,
	}
}

// UpdateCompanyRequestToModel converts UpdateCompanyRequest to model.Company
func UpdateCompanyRequestToModel(req *UpdateCompanyRequest) *model.Company {
	return &model.Company{
		ID:           req.ID,
		Name:         req.Name,
		CNPJ:         req.CNPJ,
		Email:        req.Email,
		Phone:        req.Phone,
		LogoURL:      req.LogoURL,
		PrimaryColor: req.PrimaryColor,
		Address:      req.Address,
		PixKey:       req.PixKey,
		City:         req.City,
	}
}

// CompanyModelToResponse converts model.Company to CompanyResponse
func CompanyModelToResponse(company *model.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:           company.ID,
		Name:         company.Name,
		CNPJ:         company.CNPJ,
		Email:        company.Email,
		Phone:        company.Phone,
		LogoURL:      company.LogoURL,
		PrimaryColor: company.PrimaryColor,
		Address:      company.Address,
		PixKey:       company.PixKey,
		City:         company.City,
	}
}

// CompanyModelsToResponses converts slice of model.Company to responses
func CompanyModelsToResponses(companies []*model.Company) []CompanyResponse {
	responses := make([]CompanyResponse, len(companies))
	for i, company := range companies {
		responses[i] = *CompanyModelToResponse(company)
	}
	return responses
}

// AirlineModelsToResponses converts slice of model.Airline to responses
func AirlineModelsToResponses(airlines []*model.Airline) []AirlineResponse {
	responses := make([]AirlineResponse, len(airlines))
	for i, airline := range airlines {
		responses[i] = AirlineResponse{
			ID:       airline.ID,
			Name:     airline.Name,
			IATACode: airline.IATACode,
		}
	}
	return responses
}
