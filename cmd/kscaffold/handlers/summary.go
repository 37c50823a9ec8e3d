package handlers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/imamik/kscaffold/internal/config"
	"github.com/imamik/kscaffold/internal/provisioning"
)

var (
	colorGreen = lipgloss.Color("#22c55e")
	colorRed   = lipgloss.Color("#ef4444")
	colorBlue  = lipgloss.Color("#3b82f6")
	colorDim   = lipgloss.Color("#6b7280")
	colorWhite = lipgloss.Color("#f9fafb")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	okStyle = lipgloss.NewStyle().
		Foreground(colorGreen)

	failStyle = lipgloss.NewStyle().
			Foreground(colorRed)
)

func row(label, value string) string {
	return fmt.Sprintf("  %s %s\n", dimStyle.Render(fmt.Sprintf("%-14s", label+":")), value)
}

// renderCreateSummary lists the written artifacts and the spec they came from.
func renderCreateSummary(spec config.AppSpec, paths []string) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("  kscaffold: %s/%s", spec.Namespace, spec.AppName)))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("  Application"))
	b.WriteString("\n")
	b.WriteString(row("Type", spec.AppType.String()))
	b.WriteString(row("Environments", strings.Join(spec.Environments, ", ")))
	b.WriteString(row("CPU", fmt.Sprintf("%dm / %dm", spec.Resources.CPURequested, spec.Resources.CPULimit)))
	b.WriteString(row("Memory", fmt.Sprintf("%dMi / %dMi", spec.Resources.MemoryRequested, spec.Resources.MemoryLimit)))
	b.WriteString(row("Replicas", fmt.Sprintf("%d", spec.Replicas)))
	if spec.AppType == config.AppTypeWebApp {
		b.WriteString(row("Port", fmt.Sprintf("%d", spec.Port)))
	}
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("  Artifacts"))
	b.WriteString("\n")
	for _, p := range paths {
		b.WriteString(fmt.Sprintf("  %s %s\n", okStyle.Render("✓"), p))
	}
	b.WriteString("\n")

	return b.String()
}

// renderProvisionSummary lists what was created remotely. When err is set the
// list is the partial result left in place.
func renderProvisionSummary(created []provisioning.Resource, err error) string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("  Provisioned"))
	b.WriteString("\n")
	if len(created) == 0 {
		b.WriteString(dimStyle.Render("  nothing was created"))
		b.WriteString("\n")
	}
	for _, r := range created {
		scope := r.Environment
		if scope == "" {
			scope = "shared"
		}
		b.WriteString(fmt.Sprintf("  %s %-6s %-10s %s\n", okStyle.Render("✓"), scope, r.Step, r.Name))
	}

	if err != nil {
		b.WriteString("\n")
		b.WriteString(failStyle.Render(fmt.Sprintf("  ✗ %v", err)))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("  Resources listed above were kept, remove them before retrying."))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	return b.String()
}

// renderInitSummary prints the saved spec and how to use it.
func renderInitSummary(outputPath string, spec config.AppSpec) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  Spec saved to " + outputPath))
	b.WriteString("\n\n")
	b.WriteString(row("Namespace", spec.Namespace))
	b.WriteString(row("App", spec.AppName))
	b.WriteString(row("Type", spec.AppType.String()))
	b.WriteString(row("Environments", strings.Join(spec.Environments, ", ")))
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("  Next Steps"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  kscaffold create -c %s\n", outputPath))
	b.WriteString(fmt.Sprintf("  kscaffold create -c %s --provision\n\n", outputPath))

	return b.String()
}
