package agent

import (
	"context"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			Analyse sentiment of user request, he is here primarily to understand his spending,
			stay within his monthly budget, and get practical advice about his money.
			If he is angry try to understand why, and seek for a clear user approval.

			Devise a plan of questions to ask to each experts and come up with the best reponse to the user's request.

			The user will assume that you know about his transactions, ask the Analyst first to understand them.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewCoach returns the budgeting expert, grounded with Google Search.
func NewCoach() *Expert {
	return &Expert{
		Name: "Coach",
		Description: `This is a personal finance coach,
		very well aware of budgeting methods, saving strategies,
		currencies and the cost of everyday life.
		Ask the Coach whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in personal finance, you can search and find about anything related to
			budgeting, saving, prices, currencies and exchange rates. You leverage Google Search to
			ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewAnalyst returns the expert in charge of the user's own records. The
// snapshot callback renders the current transactions and dashboard as
// markdown; keeping it a closure leaves storage concerns to the caller.
func NewAnalyst(snapshot func() (string, error)) *Expert {

	getSnapshot := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "GetSnapshot",
			Description: `GetSnapshot returns the user's current financial records:
			the dashboard figures (income, expenses, remaining, monthly budget and spending,
			top category, weekly trend) followed by the full transaction list.
			Amounts are expressed in the user's display currency.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted dashboard and transaction table.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			out, err := snapshot()
			if err != nil {
				return &genai.FunctionResponse{
					ID:   id,
					Name: "GetSnapshot",
					Response: map[string]any{
						"error": err.Error(),
					},
				}
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: "GetSnapshot",
				Response: map[string]any{
					"output": out,
				},
			}
		},
	}

	lib := []Function{getSnapshot}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He is in charge of reading the user's transaction records.
		He can report the relevant figures about the user's income, expenses and budget.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's transaction records.
				You know how to use the Tools to extract relevant information about the user's spending.
				You are part of a team of experts, yours is everything about the user's own records. They might ask
				you questions about the user's finances, pardon their approximative language and figure out what they meant.

				Use the available tools to get information about the user's records
				  - dashboard figures
				  - transaction list
			`}}},
		},
		Library: NewLibrary(lib),
	}
}
