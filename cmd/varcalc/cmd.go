package main

// CLI defines the root command structure with subcommands
type CLI struct {
	Run         RunCmd         `cmd:"" default:"1" help:"Print the calculation example"`
	Interactive InteractiveCmd `cmd:"" help:"Start the interactive calculator"`
}

// RunCmd prints the calculation example
type RunCmd struct {
	Operation string `short:"o" help:"Operation mode: addition, subtraction or none (overrides build-time default)"`
	Debug     bool   `short:"d" help:"Enable debug output"`
	NoCalc    bool   `help:"Skip the calculation step; print only the banner"`
	Operand1  *int   `placeholder:"N" help:"First operand (default 73)"`
	Operand2  *int   `placeholder:"N" help:"Second operand (default 37)"`
	Config    string `type:"path" help:"Path to TOML config file"`
}

// InteractiveCmd starts the interactive calculator
type InteractiveCmd struct {
	Config string `type:"path" help:"Path to TOML config file"`
}
