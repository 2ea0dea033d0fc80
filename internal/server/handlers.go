package server

import (
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/plateful/plateful/internal/logger"
	"github.com/plateful/plateful/internal/session"
	"github.com/plateful/plateful/pkg/mealhtml"
	"github.com/plateful/plateful/pkg/planner"
	"github.com/plateful/plateful/pkg/textutil"
)

// Meal names offered by the narration selector.
var mealNames = []string{"Breakfast", "Lunch", "Dinner"}

// maxImageButtons bounds how many detected titles get an image trigger.
const maxImageButtons = 3

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFor(w, r)
	s.renderPage(w, sess, r.URL.Query().Get("err"), r.URL.Query().Get("msg"))
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFor(w, r)

	if err := r.ParseForm(); err != nil {
		s.redirectErr(w, r, "invalid form submission")
		return
	}

	kcal, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("kcal")))
	if err != nil {
		s.redirectErr(w, r, "max daily kcal must be a number")
		return
	}
	temperature := 1.0
	if v := strings.TrimSpace(r.PostFormValue("temperature")); v != "" {
		temperature, err = strconv.ParseFloat(v, 64)
		if err != nil {
			s.redirectErr(w, r, "temperature must be a number")
			return
		}
	}

	req := planner.PlanRequest{
		Ingredients:      r.PostFormValue("ingredients"),
		MaxCalories:      kcal,
		ExactIngredients: r.PostFormValue("exact") == "on",
		Temperature:      temperature,
		Extra:            r.PostFormValue("extra"),
		Model:            strings.TrimSpace(r.PostFormValue("model")),
	}

	raw, err := s.planner.GeneratePlan(r.Context(), req)
	if err != nil {
		// The failed action aborts; any previously generated plan stays.
		logger.Error("plan generation failed", "error", err)
		s.redirectErr(w, r, "meal plan generation failed: "+err.Error())
		return
	}

	sess.SetPlan(raw)
	s.redirectMsg(w, r, "Meal plan generated.")
}

func (s *Server) handleGenerateImage(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFor(w, r)

	if err := r.ParseForm(); err != nil {
		s.redirectErr(w, r, "invalid form submission")
		return
	}
	title := textutil.Normalize(r.PostFormValue("title"))
	if title == "" {
		s.redirectErr(w, r, "missing recipe title")
		return
	}

	// A repeat request for a cached title serves the stored image instead of
	// billing the image API again.
	if _, ok := sess.Image(title); ok {
		s.redirectMsg(w, r, fmt.Sprintf("Image for %q already generated.", title))
		return
	}

	img, err := s.planner.GenerateImage(r.Context(), title, "white background")
	if err != nil {
		logger.Error("image generation failed", "title", title, "error", err)
		s.redirectErr(w, r, "image generation failed: "+err.Error())
		return
	}

	sess.StoreImage(title, img.Bytes)
	s.redirectMsg(w, r, fmt.Sprintf("Image generated for %q.", title))
}

func (s *Server) handleServeImage(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFor(w, r)

	title, err := url.PathUnescape(chi.URLParam(r, "title"))
	if err != nil {
		http.Error(w, "bad title", http.StatusBadRequest)
		return
	}

	data, ok := sess.Image(title)
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if r.URL.Query().Get("download") == "1" {
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", textutil.SafeFilename(title, planner.ImageFileExtension)))
	}
	_, _ = w.Write(data)
}

func (s *Server) handleNarrate(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFor(w, r)

	if err := r.ParseForm(); err != nil {
		s.redirectErr(w, r, "invalid form submission")
		return
	}
	meal := r.PostFormValue("meal")
	if !validMeal(meal) {
		s.redirectErr(w, r, "unknown meal selection")
		return
	}

	raw := sess.Plan()
	if raw == "" {
		s.redirectErr(w, r, "generate a meal plan first")
		return
	}

	// A parse miss is a normal degraded outcome, not a failure.
	text := mealhtml.ToText(mealhtml.ExtractMealSection(raw, meal))
	if text == "" {
		s.redirectMsg(w, r, fmt.Sprintf("No %s section found in the current plan.", meal))
		return
	}

	audio, err := s.planner.Narrate(r.Context(), text, planner.DefaultVoice)
	if err != nil {
		logger.Error("narration failed", "meal", meal, "error", err)
		s.redirectErr(w, r, "narration failed: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", meal+planner.AudioFileExtension))
	_, _ = w.Write(audio)
}

func (s *Server) handleGallery(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFor(w, r)

	images := sess.Images()
	entries := make([]galleryEntry, 0, len(images))
	for title := range images {
		entries = append(entries, galleryEntry{
			Title:       title,
			ImageURL:    "/image/" + url.PathEscape(title),
			DownloadURL: "/image/" + url.PathEscape(title) + "?download=1",
		})
	}

	s.renderTemplate(w, galleryTemplate, galleryData{Entries: entries})
}

// renderPage renders the main page for the session's current state.
func (s *Server) renderPage(w http.ResponseWriter, sess *session.State, errMsg, msg string) {
	data := pageData{
		Models:  s.cfg.Models,
		Meals:   mealNames,
		Error:   errMsg,
		Message: msg,
	}

	if raw := sess.Plan(); raw != "" {
		kind, html, err := s.renderer.HTML(raw)
		if err != nil {
			logger.Error("plan rendering failed", "error", err)
			data.Error = "failed to render plan: " + err.Error()
		} else {
			data.Plan = template.HTML(html)
			data.Kind = kind.String()
		}

		titles := mealhtml.ParseTitles(raw)
		if len(titles) > maxImageButtons {
			titles = titles[:maxImageButtons]
		}
		for _, title := range titles {
			entry := titleEntry{Title: title}
			if _, ok := sess.Image(title); ok {
				entry.ImageURL = "/image/" + url.PathEscape(title)
			}
			data.Titles = append(data.Titles, entry)
		}
	}

	s.renderTemplate(w, indexTemplate, data)
}

func (s *Server) renderTemplate(w http.ResponseWriter, tmpl *template.Template, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		logger.Error("template execution failed", "error", err)
	}
}

func (s *Server) redirectErr(w http.ResponseWriter, r *http.Request, msg string) {
	http.Redirect(w, r, "/?err="+url.QueryEscape(msg), http.StatusSeeOther)
}

func (s *Server) redirectMsg(w http.ResponseWriter, r *http.Request, msg string) {
	http.Redirect(w, r, "/?msg="+url.QueryEscape(msg), http.StatusSeeOther)
}

func validMeal(meal string) bool {
	for _, m := range mealNames {
		if m == meal {
			return true
		}
	}
	return false
}
