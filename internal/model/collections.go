package model

const (
	TenantsCollection    = "tenants"
	CategoriesCollection = "categories"
	ServicesCollection   = "services"
	RequestsCollection   = "requests"
)
