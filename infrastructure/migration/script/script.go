package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/spf13/pflag"
	"github.com/vfg2006/dailysale/infrastructure/database/postgres"
	"github.com/vfg2006/dailysale/infrastructure/repository"
	"github.com/vfg2006/dailysale/internal/config"
	"github.com/vfg2006/dailysale/internal/domain"
	"github.com/vfg2006/dailysale/internal/usecases/licensing"
)

var schema = []struct {
	name string
	ddl  string
}{
	{
		name: "licenses",
		ddl: `CREATE TABLE IF NOT EXISTS licenses (
			id SERIAL PRIMARY KEY,
			key VARCHAR(32) NOT NULL UNIQUE,
			plan VARCHAR(16) NOT NULL DEFAULT 'trial',
			active BOOLEAN NOT NULL DEFAULT TRUE,
			max_runs_per_month INTEGER NOT NULL DEFAULT 3,
			used_runs_this_period INTEGER NOT NULL DEFAULT 0,
			period_start TIMESTAMPTZ NOT NULL DEFAULT date_trunc('month', NOW()),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "users",
		ddl: `CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			email VARCHAR(255) NOT NULL UNIQUE,
			plan VARCHAR(16) NOT NULL DEFAULT 'free',
			license_key VARCHAR(32) REFERENCES licenses(key),
			credits INTEGER NOT NULL DEFAULT 0 CHECK (credits >= 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "users_license_key_idx",
		ddl:  `CREATE INDEX IF NOT EXISTS users_license_key_idx ON users (license_key)`,
	},
}

func setupLogger() {
	// Configura o logger para incluir data, hora e arquivo
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando script de migração...")
}

func createSchema(ctx context.Context, db *sql.DB) {
	log.Printf("Criando %d objetos de schema...", len(schema))
	startTime := time.Now()

	for _, object := range schema {
		if _, err := db.ExecContext(ctx, object.ddl); err != nil {
			log.Fatalf("ERRO ao criar %s: %v", object.name, err)
		}
		log.Printf("Schema %s pronto", object.name)
	}

	log.Printf("Schema concluído em %v", time.Since(startTime))
}

// provision cria a licença e a vincula ao usuário do email, criando o usuário se preciso
func provision(ctx context.Context, conn *postgres.Connection, cfg *config.Config, email string, plan domain.UserPlan, credits int) {
	userRepo := repository.NewUserRepository(conn)
	licenser := licensing.NewService(repository.NewLicenseRepository(conn), userRepo, cfg.License)

	user, err := userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		log.Fatalf("ERRO ao buscar usuário %s: %v", email, err)
	}
	if user != nil && user.LicenseKey != nil {
		log.Printf("AVISO: usuário %s já tem a licença %s, nada a fazer", email, *user.LicenseKey)
		return
	}

	license, err := licenser.Provision(ctx, plan)
	if err != nil {
		log.Fatalf("ERRO ao provisionar licença: %v", err)
	}

	if user == nil {
		user, err = userRepo.CreateUser(ctx, &domain.User{
			Email:      email,
			Plan:       plan,
			LicenseKey: &license.Key,
			Credits:    credits,
		})
		if err != nil {
			log.Fatalf("ERRO ao criar usuário %s: %v", email, err)
		}
	} else if err := userRepo.SetLicenseKey(ctx, user.ID, license.Key); err != nil {
		log.Fatalf("ERRO ao vincular licença ao usuário %s: %v", email, err)
	}

	log.Printf("Licença %s (%s) vinculada ao usuário %d <%s>", license.Key, license.Plan, user.ID, email)
}

func main() {
	setupLogger()

	flags := pflag.NewFlagSet("script", pflag.ExitOnError)
	email := flags.String("email", "", "email do usuário que recebe a licença")
	plan := flags.String("plan", string(domain.UserPlanFree), "plano do usuário (free ou full)")
	credits := flags.Int("credits", 0, "saldo inicial de créditos de um usuário novo")
	schemaOnly := flags.Bool("schema-only", false, "apenas cria as tabelas")
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	log.Println("Conectando ao banco de dados...")
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()

	createSchema(ctx, conn.DB)

	if *schemaOnly || *email == "" {
		log.Println("Nenhum email informado, provisionamento ignorado")
		return
	}

	if *credits < 0 {
		log.Fatalf("ERRO: créditos iniciais não podem ser negativos (%d)", *credits)
	}

	provision(ctx, conn, cfg, *email, domain.UserPlan(*plan), *credits)
	log.Println("Script concluído")
}
