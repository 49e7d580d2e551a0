package agent

import (
	"context"
	"fmt"

	tayeb "github.com/AbdulrahmanFiala/Tayeb"
	"github.com/AbdulrahmanFiala/Tayeb/renderer"
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

			Learn about the expert's skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand his balance, his baskets, his
			dollar-cost-averaging orders, and whether the assets involved are
			Sharia-compliant.

			Devise a plan of questions to ask each expert and come up with the best
			response to the user's request. The user will assume that you already
			know his holdings, so check the platform state first.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewScholar returns the expert on Sharia finance, grounded by search.
func NewScholar() *Expert {
	return &Expert{
		Name: "Scholar",
		Description: `This is an expert in Islamic finance.
		He knows the screening criteria used to classify assets as halal or haram,
		and the latest rulings and news about crypto assets and funds.
		Ask the Scholar whenever you need recent or grounding information about compliance.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in Islamic finance and Sharia screening of crypto assets.
			You leverage Google Search to ground your assertions in recent rulings,
			screening methodologies and market news, and you know how to relate them
			to the user's request.
				`}}},
		},
	}
}

// NewCustodian returns the expert in charge of the user's platform state,
// read from the journal at the given path.
func NewCustodian(journalFile string) *Expert {
	lib := []Function{
		registryFunc(journalFile),
		holdingsFunc(journalFile),
		ordersFunc(journalFile),
	}

	return &Expert{
		Name: "Custodian",
		Description: `This is the Custodian. He is in charge of reading the user's
		platform state: the compliant-asset registry, balances, baskets and
		dollar-cost-averaging orders.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the custodian of the user's investment platform.
				You know how to use the Tools to extract relevant information:
				  - the registry of compliant assets
				  - the user's balance and baskets
				  - the user's dollar-cost-averaging orders
				You are part of a team of experts; pardon their approximative
				language and figure out what they meant.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Fn   func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Fn(ctx, id, args)
}

// respond wraps a markdown renderer into a FunctionResponse.
func respond(id, name string, render func() (string, error)) *genai.FunctionResponse {
	out, err := render()
	if err != nil {
		return &genai.FunctionResponse{
			ID:   id,
			Name: name,
			Response: map[string]any{
				"error": err.Error(),
			},
		}
	}
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": out,
		},
	}
}

func loadPlatform(journalFile string) (*tayeb.Platform, error) {
	journal, err := tayeb.LoadJournal(journalFile)
	if err != nil {
		return nil, fmt.Errorf("could not load journal %q: %w", journalFile, err)
	}
	return journal.Replay()
}

func accountArg(args map[string]any) (tayeb.AccountID, error) {
	iaccount, ok := args["account"]
	if !ok {
		return "", fmt.Errorf("missing required argument 'account'")
	}
	account, ok := iaccount.(string)
	if !ok {
		return "", fmt.Errorf("argument 'account' is not a string as expected but %T", iaccount)
	}
	return tayeb.AccountID(account), nil
}

var accountSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"account": {
			Type:        genai.TypeString,
			Description: "The account identifier of the user.",
		},
	},
	Required: []string{"account"},
}

func registryFunc(journalFile string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Registry",
			Description: `Registry lists all Sharia-compliant assets on the platform,
			with their identifier, name, trading symbol and the compliance rationale.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the compliant-asset registry.",
			},
		},
		Fn: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return respond(id, "Registry", func() (string, error) {
				p, err := loadPlatform(journalFile)
				if err != nil {
					return "", err
				}
				return renderer.Assets(p.Assets()), nil
			})
		},
	}
}

func holdingsFunc(journalFile string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Holdings",
			Description: `Holdings reports the given account's free balance and all
			the baskets it owns, with their allocations and total value.`,
			Parameters: accountSchema,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted report of the account's balance and baskets.",
			},
		},
		Fn: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return respond(id, "Holdings", func() (string, error) {
				account, err := accountArg(args)
				if err != nil {
					return "", err
				}
				p, err := loadPlatform(journalFile)
				if err != nil {
					return "", err
				}
				out := renderer.Balance(account, p.BalanceOf(account))
				out += "\n" + renderer.Baskets("Baskets", p.UserBaskets(account))
				return out, nil
			})
		},
	}
}

func ordersFunc(journalFile string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Orders",
			Description: `Orders lists the given account's dollar-cost-averaging
			orders with their progress and status.`,
			Parameters: accountSchema,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the account's DCA orders.",
			},
		},
		Fn: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return respond(id, "Orders", func() (string, error) {
				account, err := accountArg(args)
				if err != nil {
					return "", err
				}
				p, err := loadPlatform(journalFile)
				if err != nil {
					return "", err
				}
				return renderer.Orders(p.UserOrders(account)), nil
			})
		},
	}
}
