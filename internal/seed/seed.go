// Package seed holds the dataset a fresh store starts from.
package seed

import (
	"campusmart/internal/catalog"
	"campusmart/internal/domain"
)

// Data is the first-run content of the users, businesses and products slots.
type Data struct {
	Users      []domain.User
	Businesses []domain.Business
	Products   []domain.Product
}

// Default returns a fresh copy of the built-in campus dataset.
func Default() Data {
	cafe, printShop := "b-cafe", "b-print"
	cafeIG := "@cafedelcampus"

	return Data{
		Users: []domain.User{
			{ID: domain.AdminUserID, Name: "Administración", Email: "admin@campus.edu", Role: domain.RoleAdmin},
			{ID: "u-maria", Name: "María López", Email: "maria@campus.edu", Role: domain.RoleEntrepreneur, BusinessID: &cafe},
			{ID: "u-jorge", Name: "Jorge Ramírez", Email: "jorge@campus.edu", Role: domain.RoleEntrepreneur, BusinessID: &printShop},
			{ID: "u-ana", Name: "Ana Torres", Email: "ana@campus.edu", Role: domain.RoleStudent},
			{ID: "u-luis", Name: "Luis Gómez", Email: "luis@correo.com", Role: domain.RoleCustomer},
		},
		Businesses: []domain.Business{
			{
				ID:          cafe,
				Name:        "Café del Campus",
				Description: "Café de especialidad y repostería casera.",
				Category:    "Alimentos",
				Owner:       "María López",
				Faculty:     "Ingeniería",
				Phone:       "555-0101",
				Email:       "cafe@campus.edu",
				Instagram:   &cafeIG,
				Rating:      4.8,
				TotalSales:  312,
				JoinedDate:  "2023-08-14",
				Logo:        "/img/cafe-logo.png",
				Banner:      "/img/cafe-banner.jpg",
			},
			{
				ID:          printShop,
				Name:        "Impresiones Express",
				Description: "Impresión, engargolado y copias a color.",
				Category:    "Servicios",
				Owner:       "Jorge Ramírez",
				Faculty:     "Arquitectura",
				Phone:       "555-0199",
				Email:       "print@campus.edu",
				Rating:      4.5,
				TotalSales:  128,
				JoinedDate:  "2024-01-22",
				Logo:        "/img/print-logo.png",
				Banner:      "/img/print-banner.jpg",
			},
		},
		Products: catalog.NormalizeAll([]domain.Product{
			{
				ID:          "p-latte",
				Name:        "Latte",
				Description: "Latte de 12 oz con leche entera.",
				Price:       45,
				Category:    "Bebidas",
				Stock:       40,
				BusinessID:  cafe,
				Image:       "/img/latte.jpg",
				Featured:    catalog.Bool(true),
			},
			{
				ID:            "p-brownie",
				Name:          "Brownie",
				Description:   "Brownie de chocolate con nuez.",
				Price:         30,
				Category:      "Postres",
				Stock:         25,
				BusinessID:    cafe,
				Images:        []string{"/img/brownie-1.jpg", "/img/brownie-2.jpg"},
				AcceptsPaypal: catalog.Bool(false),
			},
			{
				ID:              "p-print-bw",
				Name:            "Impresión B/N",
				Description:     "Hoja tamaño carta en blanco y negro.",
				Price:           1.5,
				Category:        "Impresión",
				Stock:           1000,
				BusinessID:      printShop,
				Image:           "/img/print-bw.jpg",
				AcceptsDelivery: catalog.Bool(false),
			},
			{
				ID:          "p-binding",
				Name:        "Engargolado",
				Description: "Engargolado con pasta transparente.",
				Price:       25,
				Category:    "Impresión",
				Stock:       60,
				BusinessID:  printShop,
				Image:       "/img/binding.jpg",
				Featured:    catalog.Bool(true),
			},
		}),
	}
}
