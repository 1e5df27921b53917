package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/diillson/brand-freshness-dashboard-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner() {
	banner := `
  ____                      _   _____               _
 | __ ) _ __ __ _ _ __   __| | |  ___| __ ___  ___| |__  _ __   ___  ___ ___
 |  _ \| '__/ _' | '_ \ / _' | | |_ | '__/ _ \/ __| '_ \| '_ \ / _ \/ __/ __|
 | |_) | | | (_| | | | | (_| | |  _|| | |  __/\__ \ | | | | | |  __/\__ \__ \
 |____/|_|  \__,_|_| |_|\__,_| |_|  |_|  \___||___/_| |_|_| |_|\___||___/___/
`
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(green(banner))
	fmt.Println(blue(fmt.Sprintf("Brand Freshness Dashboard CLI (v%s)", version.FormatVersion())))
}
