package domain

import "fmt"

// Question is a single scored item within a practice. IDs are sequential
// within the practice.
type Question struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

// Practice is a named capability area scored via one or more questions.
// Invariant: every practice has at least one question.
type Practice struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Questions []Question `json:"questions"`
}

// Category groups practices. The catalog is the ordered list of categories.
type Category struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Practices []Practice `json:"practices"`
}

// CustomPractice is a user-defined practice persisted separately and merged
// into the default catalog at read time.
type CustomPractice struct {
	CategoryID string   `json:"categoryId"`
	Practice   Practice `json:"practice"`
}

// AnswerKey builds the composite key used by answer maps.
func AnswerKey(categoryID string, practiceID, questionID int) string {
	return fmt.Sprintf("%s-%d-%d", categoryID, practiceID, questionID)
}

// PracticeKey identifies a practice across assessments and action plans.
func PracticeKey(categoryID string, practiceID int) string {
	return fmt.Sprintf("%s-%d", categoryID, practiceID)
}

// DefaultCatalog returns a fresh copy of the built-in question catalog.
// Callers may append to it freely (the custom-practice merge does).
func DefaultCatalog() []Category {
	return []Category{
		{
			ID:   "modelo-operacional",
			Name: "Modelo Operacional",
			Practices: []Practice{
				{
					ID:   1,
					Name: "Requisitos e Estórias",
					Questions: []Question{
						{ID: 1, Text: "Documenta todos os itens e critérios de aceite nas histórias?"},
						{ID: 2, Text: "Mantém rastreabilidade entre requisitos e testes?"},
					},
				},
				{
					ID:   2,
					Name: "Ritos Ágeis",
					Questions: []Question{
						{ID: 1, Text: "Aplica todos os ritos de iterações do projeto? (Daily, Review, Retro, Planning)"},
						{ID: 2, Text: "Utiliza métricas ágeis para acompanhamento do progresso?"},
					},
				},
			},
		},
		{
			ID:   "desenvolvimento",
			Name: "Desenvolvimento",
			Practices: []Practice{
				{
					ID:   3,
					Name: "Gestão de Configuração",
					Questions: []Question{
						{ID: 1, Text: "Realiza os testes mantendo a integridade de versionamento nos ambientes (desenvolvimento, testes e homologação)?"},
						{ID: 2, Text: "Utiliza branches e estratégias de merge adequadas?"},
					},
				},
				{
					ID:   4,
					Name: "Práticas de Código",
					Questions: []Question{
						{ID: 1, Text: "Implementa revisão de código (code review) antes de integrar?"},
						{ID: 2, Text: "Utiliza padrões de codificação consistentes?"},
					},
				},
			},
		},
		{
			ID:   "ambiente-massa",
			Name: "Ambiente e Massa de Testes",
			Practices: []Practice{
				{
					ID:   5,
					Name: "Infraestrutura de Testes",
					Questions: []Question{
						{ID: 1, Text: "Possui ambientes dedicados para testes automatizados?"},
						{ID: 2, Text: "Implementa infraestrutura como código para ambientes de teste?"},
					},
				},
				{
					ID:   6,
					Name: "Dados de Teste",
					Questions: []Question{
						{ID: 1, Text: "Mantém dados de teste consistentes e atualizados?"},
						{ID: 2, Text: "Utiliza técnicas de mascaramento de dados sensíveis?"},
					},
				},
			},
		},
		{
			ID:   "testes-funcionais",
			Name: "Testes Funcionais",
			Practices: []Practice{
				{
					ID:   7,
					Name: "Automação de Testes",
					Questions: []Question{
						{ID: 1, Text: "Implementa testes automatizados para funcionalidades críticas?"},
						{ID: 2, Text: "Mantém cobertura de testes adequada?"},
					},
				},
				{
					ID:   8,
					Name: "Testes de Regressão",
					Questions: []Question{
						{ID: 1, Text: "Executa testes de regressão a cada nova versão?"},
						{ID: 2, Text: "Prioriza testes de regressão baseados em risco?"},
					},
				},
			},
		},
		{
			ID:   "seguranca",
			Name: "Segurança",
			Practices: []Practice{
				{
					ID:   9,
					Name: "Testes de Segurança",
					Questions: []Question{
						{ID: 1, Text: "Realiza análise de vulnerabilidades regularmente?"},
						{ID: 2, Text: "Implementa testes de penetração?"},
					},
				},
				{
					ID:   10,
					Name: "Proteção de Dados",
					Questions: []Question{
						{ID: 1, Text: "Aplica princípios de privacidade por design?"},
						{ID: 2, Text: "Implementa controles de acesso adequados?"},
					},
				},
			},
		},
		{
			ID:   "testes-nao-funcionais",
			Name: "Testes Não Funcionais",
			Practices: []Practice{
				{
					ID:   11,
					Name: "Performance",
					Questions: []Question{
						{ID: 1, Text: "Realiza testes de carga e stress regularmente?"},
						{ID: 2, Text: "Monitora métricas de performance em produção?"},
					},
				},
				{
					ID:   12,
					Name: "Usabilidade",
					Questions: []Question{
						{ID: 1, Text: "Conduz testes de usabilidade com usuários reais?"},
						{ID: 2, Text: "Implementa feedback de usuários no ciclo de desenvolvimento?"},
					},
				},
			},
		},
	}
}
