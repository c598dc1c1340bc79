package main

import (
	"fmt"

	"github.com/jonathan/portfolio-site/internal/content"
	"github.com/jonathan/portfolio-site/internal/observability"
	"github.com/jonathan/portfolio-site/internal/section"
	"github.com/jonathan/portfolio-site/internal/viewmodel"
	"github.com/spf13/cobra"
)

var (
	showDataDir string
	showTab     string
	showOpen    string
)

var showCmd = &cobra.Command{
	Use:       "show <section>",
	Short:     "Render a section's cards in the terminal",
	Long:      "Renders one section (activities, projects, certifications, experience or skills) as it would appear on the site. --open expands a single record.",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"activities", "projects", "certifications", "experience", "skills"},
	RunE:      runShow,
}

func init() {
	showCmd.Flags().StringVar(&showDataDir, "data-dir", "data", "Directory holding the content documents")
	showCmd.Flags().StringVar(&showTab, "tab", "", "Activities tab to show (default featured)")
	showCmd.Flags().StringVar(&showOpen, "open", "", "Id of the record to expand")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	name, err := content.ParseName(args[0])
	if err != nil {
		return fmt.Errorf("unknown section %q", args[0])
	}
	if showTab != "" && name != content.Activities {
		return fmt.Errorf("--tab only applies to activities")
	}
	if showOpen != "" && (name == content.Experience || name == content.Skills) {
		return fmt.Errorf("--open only applies to activities, projects and certifications")
	}

	dir, err := resolveDataDir(cmd, showDataDir)
	if err != nil {
		return err
	}
	store := content.NewDirStore(dir)
	printer := observability.NewPrinter(cmd.OutOrStdout())
	ctx := cmd.Context()

	switch name {
	case content.Activities:
		doc, err := store.Activities(ctx)
		if err != nil {
			return err
		}
		ctrl := section.NewActivitiesController(doc)
		if showTab != "" {
			if err := ctrl.SetTab(showTab); err != nil {
				return err
			}
		}
		if showOpen != "" {
			if err := ctrl.Open(showOpen); err != nil {
				return err
			}
			d, _ := ctrl.Expanded()
			printer.PrintActivityDetail(d)
			return nil
		}
		printer.PrintActivities(ctrl.Tabs(), ctrl.ActiveTab(), ctrl.Cards())

	case content.Projects:
		doc, err := store.Projects(ctx)
		if err != nil {
			return err
		}
		ctrl := section.NewProjectsController(doc)
		if showOpen != "" {
			if err := ctrl.Open(showOpen); err != nil {
				return err
			}
			d, _ := ctrl.Expanded()
			printer.PrintProjectDetail(d)
			return nil
		}
		printer.PrintProjects(ctrl.Featured(), ctrl.Others())

	case content.Certifications:
		doc, err := store.Certifications(ctx)
		if err != nil {
			return err
		}
		ctrl := section.NewCertificationsController(doc)
		if showOpen != "" {
			if err := ctrl.Open(showOpen); err != nil {
				return err
			}
			d, _ := ctrl.Expanded()
			printer.PrintCertificationDetail(d)
			return nil
		}
		printer.PrintCertifications(ctrl.Cards(), ctrl.Summary())

	case content.Experience:
		doc, err := store.Experience(ctx)
		if err != nil {
			return err
		}
		cards := make([]viewmodel.ExperienceCard, 0, len(doc.Experiences))
		for _, e := range doc.Experiences {
			cards = append(cards, viewmodel.ProjectExperience(e))
		}
		printer.PrintExperience(cards)

	case content.Skills:
		doc, err := store.Skills(ctx)
		if err != nil {
			return err
		}
		categories := make([]viewmodel.SkillCategoryCard, 0, len(doc.SkillCategories))
		for _, c := range doc.SkillCategories {
			categories = append(categories, viewmodel.ProjectSkillCategory(c))
		}
		printer.PrintSkills(categories, doc.TechStack)
	}

	return nil
}
