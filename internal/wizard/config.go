package wizard

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config descreve a forma do assistente externo: seletores, frases e atrasos.
// Fica em YAML para ser ajustada quando o painel muda sem recompilar.
type Config struct {
	CreateRoute   string        `yaml:"create_route"`
	SalesDetails  string        `yaml:"sales_details_route"`
	WaitTimeout   time.Duration `yaml:"wait_timeout"`
	PollInterval  time.Duration `yaml:"poll_interval"`
	Selectors     Selectors     `yaml:"selectors"`
	Phrases       Phrases       `yaml:"phrases"`
	Delays        Delays        `yaml:"delays"`
	DiscountValue string        `yaml:"discount_type_value"`
}

type Selectors struct {
	Clickable        string   `yaml:"clickable"`
	DiscountType     string   `yaml:"discount_type"`
	RewardPercentage string   `yaml:"reward_percentage"`
	RewardOption     string   `yaml:"reward_option"`
	PercentInputs    []string `yaml:"percent_inputs"`
	DateInputs       string   `yaml:"date_inputs"`
	Terms            []string `yaml:"terms"`
	SaleName         []string `yaml:"sale_name"`
	Step2Ready       string   `yaml:"step2_ready"`
	ScopeLabel       string   `yaml:"scope_label"`
	SectionPicker    string   `yaml:"section_picker"`
	SectionMenu      string   `yaml:"section_menu"`
	SectionItem      string   `yaml:"section_item"`
	SectionAction    string   `yaml:"section_action"`
	FinalButtons     string   `yaml:"final_buttons"`
	SuccessOverlay   string   `yaml:"success_overlay"`
	OverlayModal     string   `yaml:"overlay_modal"`
	OverlayButton    string   `yaml:"overlay_button"`
}

type Phrases struct {
	EntryPoint     []string `yaml:"entry_point"`
	CustomPercent  string   `yaml:"custom_percent"`
	Continue       []string `yaml:"continue"`
	AllListings    string   `yaml:"all_listings"`
	SelectListings string   `yaml:"select_listings"`
	SectionPicker  string   `yaml:"section_picker"`
	Review         []string `yaml:"review"`
	FinalConfirm   []string `yaml:"final_confirm"`
	Done           string   `yaml:"done"`
}

// Delays são os atrasos de acomodação entre ações cujo efeito não dá para observar
type Delays struct {
	Step2Settle    time.Duration `yaml:"step2_settle"`
	SectionSettle  time.Duration `yaml:"section_settle"`
	MenuSettle     time.Duration `yaml:"menu_settle"`
	SectionChosen  time.Duration `yaml:"section_chosen"`
	BeforeReview   time.Duration `yaml:"before_review"`
	FinalSettle    time.Duration `yaml:"final_settle"`
	OverlaySettle  time.Duration `yaml:"overlay_settle"`
	AfterDoneClick time.Duration `yaml:"after_done_click"`
}

func DefaultConfig() Config {
	return Config{
		CreateRoute:   "/your/shops/me/sales-discounts/step/createSale",
		SalesDetails:  "/details-stats",
		WaitTimeout:   DefaultWaitTimeout,
		PollInterval:  DefaultPollInterval,
		DiscountValue: "percent",
		Selectors: Selectors{
			Clickable:        "button, a",
			DiscountType:     "#what-discount",
			RewardPercentage: "#reward-percentage",
			RewardOption:     "option",
			PercentInputs: []string{
				`input[name="reward_type_percent_input"]`,
				`input[aria-label="Percentage off"]`,
			},
			DateInputs:     `input[data-datepicker-input="true"]`,
			Terms:          []string{`textarea[name='description']`, "textarea"},
			SaleName:       []string{"#name-your-coupon", `input[name="promo_name"]`, "input[type='text'][maxlength]"},
			Step2Ready:     "h1, h2, legend",
			ScopeLabel:     "label",
			SectionPicker:  `button[data-dropdown-button="true"], button`,
			SectionMenu:    `div[data-dropdown-target="true"][role="menu"]`,
			SectionItem:    `li[role="presentation"]`,
			SectionAction:  `[role="menuitem"]`,
			FinalButtons:   "button[type='button'], button[type='submit'], button",
			SuccessOverlay: `div[data-test-id="success-overlay"]`,
			OverlayModal:   ".wt-overlay__modal",
			OverlayButton:  "button",
		},
		Phrases: Phrases{
			EntryPoint:     []string{"Run a sale", "Set up", "Create sale"},
			CustomPercent:  "custom",
			Continue:       []string{"Continue"},
			AllListings:    "all listings",
			SelectListings: "select listings",
			SectionPicker:  "add listings by shop section",
			Review:         []string{"Review and confirm", "Review"},
			FinalConfirm:   []string{"create sale", "start sale", "confirm", "schedule"},
			Done:           "done",
		},
		Delays: Delays{
			Step2Settle:    800 * time.Millisecond,
			SectionSettle:  1000 * time.Millisecond,
			MenuSettle:     600 * time.Millisecond,
			SectionChosen:  600 * time.Millisecond,
			BeforeReview:   500 * time.Millisecond,
			FinalSettle:    1200 * time.Millisecond,
			OverlaySettle:  1500 * time.Millisecond,
			AfterDoneClick: 800 * time.Millisecond,
		},
	}
}

// PercentInputSelector junta as alternativas do campo de percentual para a espera
func (c Config) PercentInputSelector() string {
	return strings.Join(c.Selectors.PercentInputs, ", ")
}

// LoadConfig lê o YAML por cima dos valores padrão. Arquivo ausente devolve os padrões.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("erro ao ler configuração do assistente: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("erro ao decodificar configuração do assistente: %w", err)
	}

	return cfg, nil
}

func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("erro ao codificar configuração do assistente: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
