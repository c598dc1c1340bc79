package server

import (
	"net/http"

	"github.com/jonathan/portfolio-site/internal/content"
	"github.com/jonathan/portfolio-site/internal/section"
	"github.com/jonathan/portfolio-site/internal/selection"
	"github.com/jonathan/portfolio-site/internal/types"
	"github.com/jonathan/portfolio-site/internal/viewmodel"
)

// ---------------------------------------------------------------------
// Section views
//
// Each request builds a fresh controller, so ?tab and ?open are
// stateless: the response reflects exactly the query it was asked.
// ---------------------------------------------------------------------

type ActivitiesSectionResponse struct {
	Tabs      []types.Tab               `json:"tabs"`
	ActiveTab string                    `json:"active_tab"`
	Cards     []viewmodel.ActivityCard  `json:"cards"`
	Detail    *viewmodel.ActivityDetail `json:"detail,omitempty"`
}

type ProjectsSectionResponse struct {
	Featured []viewmodel.ProjectCard  `json:"featured"`
	Others   []viewmodel.ProjectCard  `json:"others"`
	Detail   *viewmodel.ProjectDetail `json:"detail,omitempty"`
}

type CertificationsSectionResponse struct {
	Cards   []viewmodel.CertificationCard  `json:"cards"`
	Summary selection.CertificationSummary `json:"summary"`
	Detail  *viewmodel.CertificationDetail `json:"detail,omitempty"`
}

type ExperienceSectionResponse struct {
	Cards []viewmodel.ExperienceCard `json:"cards"`
}

type SkillsSectionResponse struct {
	Categories []viewmodel.SkillCategoryCard `json:"categories"`
	TechStack  []string                      `json:"tech_stack"`
}

func (s *Server) handleActivitiesSection(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.Activities(r.Context())
	if err != nil {
		s.loadFailed(w, content.Activities, err)
		return
	}

	ctrl := section.NewActivitiesController(doc)
	if tab := r.URL.Query().Get("tab"); tab != "" {
		if err := ctrl.SetTab(tab); err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
	}
	if !s.openDetail(w, r, ctrl.Open) {
		return
	}

	resp := ActivitiesSectionResponse{
		Tabs:      ctrl.Tabs(),
		ActiveTab: ctrl.ActiveTab(),
		Cards:     ctrl.Cards(),
	}
	if d, ok := ctrl.Expanded(); ok {
		resp.Detail = &d
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handleProjectsSection(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.Projects(r.Context())
	if err != nil {
		s.loadFailed(w, content.Projects, err)
		return
	}

	ctrl := section.NewProjectsController(doc)
	if !s.openDetail(w, r, ctrl.Open) {
		return
	}

	resp := ProjectsSectionResponse{
		Featured: ctrl.Featured(),
		Others:   ctrl.Others(),
	}
	if d, ok := ctrl.Expanded(); ok {
		resp.Detail = &d
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handleCertificationsSection(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.Certifications(r.Context())
	if err != nil {
		s.loadFailed(w, content.Certifications, err)
		return
	}

	ctrl := section.NewCertificationsController(doc)
	if !s.openDetail(w, r, ctrl.Open) {
		return
	}

	resp := CertificationsSectionResponse{
		Cards:   ctrl.Cards(),
		Summary: ctrl.Summary(),
	}
	if d, ok := ctrl.Expanded(); ok {
		resp.Detail = &d
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handleExperienceSection(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.Experience(r.Context())
	if err != nil {
		s.loadFailed(w, content.Experience, err)
		return
	}

	cards := make([]viewmodel.ExperienceCard, 0, len(doc.Experiences))
	for _, e := range doc.Experiences {
		cards = append(cards, viewmodel.ProjectExperience(e))
	}
	s.jsonResponse(w, http.StatusOK, ExperienceSectionResponse{Cards: cards})
}

func (s *Server) handleSkillsSection(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.Skills(r.Context())
	if err != nil {
		s.loadFailed(w, content.Skills, err)
		return
	}

	categories := make([]viewmodel.SkillCategoryCard, 0, len(doc.SkillCategories))
	for _, c := range doc.SkillCategories {
		categories = append(categories, viewmodel.ProjectSkillCategory(c))
	}
	techStack := doc.TechStack
	if techStack == nil {
		techStack = []string{}
	}
	s.jsonResponse(w, http.StatusOK, SkillsSectionResponse{Categories: categories, TechStack: techStack})
}

// openDetail applies ?open=<id>. It writes an error response and returns
// false when the id is not in the section.
func (s *Server) openDetail(w http.ResponseWriter, r *http.Request, open func(string) error) bool {
	id := r.URL.Query().Get("open")
	if id == "" {
		return true
	}
	if err := open(id); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return false
	}
	return true
}
