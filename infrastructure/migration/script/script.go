package main

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const (
	idLength   = 12
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

type Sale struct {
	SoldAt      time.Time
	Quantity    int
	TotalAmount float64
}

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")
}

func generateID() string {
	id, _ := gonanoid.Generate(characters, idLength)
	return id
}

func createSalesTable(ctx context.Context, db postgres.Queryer) {
	logrus.Info("Criando tabela sales...")

	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS sales (
			id VARCHAR(32) PRIMARY KEY,
			sold_at TIMESTAMPTZ NOT NULL,
			quantity INTEGER NOT NULL CHECK (quantity >= 0),
			total_amount NUMERIC(14, 2) NOT NULL CHECK (total_amount >= 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		logrus.Fatalf("ERRO ao criar tabela sales: %v", err)
	}

	_, err = db.ExecContext(ctx, "CREATE INDEX IF NOT EXISTS sales_sold_at_idx ON sales ((sold_at::date))")
	if err != nil {
		logrus.Fatalf("ERRO ao criar índice de sold_at: %v", err)
	}

	logrus.Info("Tabela sales pronta")
}

// sampleSales gera algumas vendas por dia para os últimos days dias, incluindo dias sem venda
func sampleSales(days int, now time.Time) []Sale {
	rng := rand.New(rand.NewSource(now.UnixNano()))
	sales := make([]Sale, 0, days*3)

	for d := days; d > 0; d-- {
		soldDay := now.AddDate(0, 0, -d)
		if rng.Intn(7) == 0 {
			continue
		}
		count := 1 + rng.Intn(4)
		for i := 0; i < count; i++ {
			quantity := 1 + rng.Intn(5)
			sales = append(sales, Sale{
				SoldAt:      soldDay.Add(time.Duration(9+rng.Intn(10)) * time.Hour),
				Quantity:    quantity,
				TotalAmount: utils.RoundWithTwoDecimalPlace(float64(quantity) * (10 + rng.Float64()*90)),
			})
		}
	}

	return sales
}

func insertSales(ctx context.Context, tx *sql.Tx, sales []Sale) error {
	logrus.Infof("Iniciando inserção de %d vendas...", len(sales))
	startTime := time.Now()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO sales (id, sold_at, quantity, total_amount) VALUES ($1, $2, $3, $4)`)
	if err != nil {
		return fmt.Errorf("erro ao preparar statement para sales: %w", err)
	}
	defer stmt.Close()

	for i, s := range sales {
		if _, err := stmt.ExecContext(ctx, generateID(), s.SoldAt, s.Quantity, s.TotalAmount); err != nil {
			return fmt.Errorf("erro ao inserir venda [%d/%d]: %w", i+1, len(sales), err)
		}
		if i > 0 && i%50 == 0 {
			logrus.Infof("Progresso: %d/%d vendas processadas", i+1, len(sales))
		}
	}

	logrus.Infof("Inserção de %d vendas concluída em %v", len(sales), time.Since(startTime))
	return nil
}

func main() {
	seedDays := pflag.Int("seed-days", 0, "gera vendas de exemplo para os últimos N dias (0 desativa)")
	pflag.Parse()

	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	logrus.Info("Conectando ao banco de dados...")

	ctx := context.Background()
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()
	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")

	createSalesTable(ctx, conn)

	if *seedDays <= 0 {
		logrus.Info("Migração concluída sem dados de exemplo")
		return
	}

	sales := sampleSales(*seedDays, time.Now())

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return insertSales(ctx, tx, sales)
	})
	if err != nil {
		logrus.Fatalf("ERRO na carga de vendas, transação revertida: %v", err)
	}

	logrus.Info("Migração concluída com sucesso")
}
