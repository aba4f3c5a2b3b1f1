// Command seed loads the demo venue set into an empty database.
package main

import (
	"context"
	"log"
	"os"

	"festivo/internal/db"
	"festivo/internal/store"

	"github.com/joho/godotenv"
)

type seedVenue struct {
	name    string
	address string
	phone   string
	mapURL  string
	images  []string
}

var venues = []seedVenue{
	{"Salón Estrellitas", "Carretera a Viacha, C. 137, El Alto", "+591 73097977", "https://maps.app.goo.gl/rb8swGawEhhoS9eaA", []string{"venues/SE1.PNG", "venues/SE2.PNG", "venues/SE3.JPG"}},
	{"Salón Principito", "Av. 16 de Julio, #60, El Alto", "+591 68071787", "https://maps.app.goo.gl/KtpzqzpXxDeGpBHL6", []string{"venues/SP1.JPG", "venues/SP2.JPG"}},
	{"Salón Condorito", "Zona San Salvador, #50, El Alto", "+591 71578344", "https://maps.app.goo.gl/xSKrP13RYBLHLZr1A", []string{"venues/SC1.JPG", "venues/SC2.JPG"}},
	{"Salón Mi Pequeño Amor", "Zona Echenique, La Paz", "+591 79698747", "https://maps.app.goo.gl/y3G31aPfYZWfyQve7", []string{"venues/PA1.JPG", "venues/PA2.JPG", "venues/PA3.JPG"}},
	{"Salón Acuarela", "Av. Buenos Aires, #591, La Paz", "+591 62548751", "https://maps.app.goo.gl/bJqBTqqvXTdhRpJ56", []string{"venues/SA1.JPG", "venues/SA2.JPG", "venues/SA3.JPG"}},
	{"Salón Arca de Noé", "Entre Av. Manuel Ballivian y Av. Alberto Gutierrez, La Paz", "+591 71226763", "https://maps.app.goo.gl/3mXvSWJhn8vHNVqr5", []string{"venues/AN1.JPG", "venues/AN2.JPG", "venues/AN3.JPG"}},
	{"Salón Oso Goloso", "Av. Eduardo Calderón, #2096, La Paz", "+591 74518963", "https://maps.app.goo.gl/rbNLmC1zejgQjKgz6", []string{"venues/OG1.JPG", "venues/OG2.JPG"}},
	{"Salón Cocazos", "Av. Fernán Caballero, #868, El Alto", "+591 69852147", "https://maps.app.goo.gl/Vndp6eVqv1v7WHvj7", []string{"venues/SCO1.JPG", "venues/SCO2.JPG"}},
	{"Salón Rinconcito Feliz", "C. Satélite, La Paz", "+591 61246696", "https://maps.app.goo.gl/Gumj7LQukB6ebG6c7", []string{"venues/SRF1.JPG", "venues/SRF2.JPG"}},
	{"Salón Burbujas", "Av. Escalona y Aguero, Calle 27, El Alto", "+591 78896967", "https://maps.app.goo.gl/4E6LwAphBzZU7kb29", []string{"venues/SB1.JPG", "venues/SB2.JPG", "venues/SB3.JPG"}},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded:", err)
	}

	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "festivo.db"
	}

	database, err := db.New(path)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	str := store.NewStorage(database)
	ctx := context.Background()

	existing, err := str.Venues.List(ctx)
	if err != nil {
		log.Fatal(err)
	}
	if len(existing) > 0 {
		log.Printf("database already has %d venues, nothing to do", len(existing))
		return
	}

	for _, v := range venues {
		venue := &store.Venue{
			Name:    v.name,
			Address: v.address,
			Phone:   v.phone,
			MapURL:  v.mapURL,
			Images:  v.images,
		}
		if err := str.Venues.Create(ctx, venue); err != nil {
			log.Fatal(err)
		}
	}
	log.Printf("seeded %d venues", len(venues))
}
