package main

import (
	"context"
	"errors"
	"log"

	"gym_manager/internal/config"
	"gym_manager/internal/logger"
	"gym_manager/internal/models"
	"gym_manager/internal/repository"
	"gym_manager/internal/services"
)

// Seeds a development database with one account per role plus a handful of
// students. Every account gets the password "123456". Safe to re-run:
// existing accounts are skipped.
func main() {
	logger.Setup()
	db := config.InitDB()
	persons := repository.NewPersonRepository(db)

	hash, err := services.HashPassword("123456")
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	admin := models.RoleAdmin
	receptionist := models.RoleReceptionist
	teacher := models.RoleTeacher
	trainee := models.RoleTrainee

	seeds := []repository.NewPersonInput{
		{Name: "Admin Master", Email: "admin@academia.com", CPF: "111.222.333-44", Role: &admin, Tenure: 24},
		{Name: "Recepcionista Ana", Email: "ana.recep@academia.com", CPF: "222.333.444-55", Role: &receptionist, Tenure: 6},
		{Name: "Professor João", Email: "joao.prof@academia.com", CPF: "444.555.666-77", Role: &teacher, Tenure: 12},
		{Name: "Estagiário Pedro", Email: "pedro.estag@academia.com", CPF: "666.777.888-99", Role: &trainee, Tenure: 1},
		{Name: "Aluno Lucas", Email: "lucas.aluno@email.com", CPF: "777.888.999-00", Student: true},
		{Name: "Aluna Sofia", Email: "sofia.aluna@email.com", CPF: "888.999.000-11", Student: true},
		// One person who is both staff and student
		{Name: "Aluno Funcionário", Email: "func.aluno@academia.com", CPF: "123.456.789-00", Role: &receptionist, Tenure: 3, Student: true},
	}

	ctx := context.Background()
	for _, seed := range seeds {
		seed.Password = hash
		person, err := persons.Create(ctx, seed)
		if err != nil {
			if errors.Is(err, services.ErrDuplicate) {
				log.Printf("skipping %s (already seeded)", seed.Email)
				continue
			}
			log.Fatalf("seed %s: %v", seed.Email, err)
		}
		log.Printf("created %s (id %d)", person.Email, person.ID)
	}
}
