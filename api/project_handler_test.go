package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielsolis/portfolio-site-backend/database"
)

func TestMutatingRoutesRejectVisitors(t *testing.T) {
	router, db := newTestRouter(t, &fakeNotifier{})
	project := addProject(t, db, "Py One", 1)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/create-project/Python/1"},
		{http.MethodPost, "/create-project/Python/1"},
		{http.MethodGet, "/edit-project/Python/" + uintString(project.ID)},
		{http.MethodPost, "/edit-project/Python/" + uintString(project.ID)},
		{http.MethodGet, "/delete-project/Python/" + uintString(project.ID)},
	}

	for _, tc := range paths {
		var rec *httptest.ResponseRecorder
		if tc.method == http.MethodGet {
			rec = doGet(router, tc.path, nil)
		} else {
			rec = doPostForm(router, tc.path, projectForm("X"), nil)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s as visitor = %d, want 401", tc.method, tc.path, rec.Code)
		}
	}

	// nothing was deleted or created along the way
	if _, err := db.ProjectRepo().FindByID(project.ID); err != nil {
		t.Fatalf("project disappeared: %v", err)
	}
}

func TestCreateProject(t *testing.T) {
	router, db := newTestRouter(t, &fakeNotifier{})
	cookies := loginAsAdmin(t, router)

	rec := doPostForm(router, "/create-project/Python/1", projectForm("Scraper"), cookies)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}

	created, err := db.ProjectRepo().FindByTitle("Scraper")
	if err != nil {
		t.Fatalf("created project not stored: %v", err)
	}
	if created.UserID != database.SeedAdminID {
		t.Errorf("owner = %d, want seed admin %d", created.UserID, database.SeedAdminID)
	}
	if created.CategoryID != 1 {
		t.Errorf("category = %d, want 1", created.CategoryID)
	}
	if created.Date != time.Now().Format(dateLayout) {
		t.Errorf("date = %q, want today", created.Date)
	}

	wantLocation := "/project/Python/" + uintString(created.ID)
	if location := rec.Header().Get("Location"); location != wantLocation {
		t.Errorf("redirect = %q, want %q", location, wantLocation)
	}
}

func TestCreateProjectUnknownCategoryIs404(t *testing.T) {
	router, _ := newTestRouter(t, &fakeNotifier{})
	cookies := loginAsAdmin(t, router)

	rec := doPostForm(router, "/create-project/Gardening/99", projectForm("Scraper"), cookies)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestCreateProjectMalformedURLPersistsNothing(t *testing.T) {
	router, db := newTestRouter(t, &fakeNotifier{})
	cookies := loginAsAdmin(t, router)

	form := projectForm("Scraper")
	form.Set("img_url", "not-a-url")
	rec := doPostForm(router, "/create-project/Python/1", form, cookies)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}

	var view ProjectFormView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode form view: %v", err)
	}
	if view.Errors["img_url"] == "" {
		t.Errorf("expected img_url error, got %v", view.Errors)
	}
	if view.Form.Title != "Scraper" {
		t.Errorf("re-rendered form lost title: %+v", view.Form)
	}

	projects, err := db.ProjectRepo().FindByCategory(1)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(projects) != 0 {
		t.Fatalf("projects persisted = %d, want 0", len(projects))
	}
}

func TestCreateProjectDuplicateTitleIsConflict(t *testing.T) {
	router, db := newTestRouter(t, &fakeNotifier{})
	cookies := loginAsAdmin(t, router)
	addProject(t, db, "Scraper", 2)

	rec := doPostForm(router, "/create-project/Python/1", projectForm("Scraper"), cookies)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}

	var view ProjectFormView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode form view: %v", err)
	}
	if view.Errors["title"] == "" {
		t.Errorf("expected title error, got %v", view.Errors)
	}

	projects, err := db.ProjectRepo().FindByCategory(1)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(projects) != 0 {
		t.Fatalf("projects persisted in category 1 = %d, want 0", len(projects))
	}
}

func TestEditProjectRefreshesDateAndOwner(t *testing.T) {
	router, db := newTestRouter(t, &fakeNotifier{})
	cookies := loginAsAdmin(t, router)

	project := addProject(t, db, "Scraper", 1)
	project.Date = "March 04, 2020"
	project.UserID = database.SeedAdminID
	if err := db.ProjectRepo().Update(project); err != nil {
		t.Fatalf("prepare: %v", err)
	}

	form := projectForm("Scraper")
	form.Set("description", "now with retries")
	rec := doPostForm(router, "/edit-project/Python/"+uintString(project.ID), form, cookies)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("edit status = %d, body %s", rec.Code, rec.Body.String())
	}

	edited, err := db.ProjectRepo().FindByID(project.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if edited.ID != project.ID {
		t.Errorf("id changed: %d -> %d", project.ID, edited.ID)
	}
	if edited.Description != "now with retries" {
		t.Errorf("description = %q", edited.Description)
	}
	if edited.Date != time.Now().Format(dateLayout) {
		t.Errorf("date = %q, want today", edited.Date)
	}
	if edited.UserID != database.SeedAdminID {
		t.Errorf("owner = %d, want seed admin", edited.UserID)
	}
}

func TestEditMissingProjectIs404(t *testing.T) {
	router, _ := newTestRouter(t, &fakeNotifier{})
	cookies := loginAsAdmin(t, router)

	if rec := doGet(router, "/edit-project/Python/12345", cookies); rec.Code != http.StatusNotFound {
		t.Fatalf("GET status = %d, want 404", rec.Code)
	}
	if rec := doPostForm(router, "/edit-project/Python/12345", projectForm("X"), cookies); rec.Code != http.StatusNotFound {
		t.Fatalf("POST status = %d, want 404", rec.Code)
	}
}

func TestEditFormIsPrefilled(t *testing.T) {
	router, db := newTestRouter(t, &fakeNotifier{})
	cookies := loginAsAdmin(t, router)
	project := addProject(t, db, "Scraper", 1)

	rec := doGet(router, "/edit-project/Python/"+uintString(project.ID), cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var view ProjectFormView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode form view: %v", err)
	}
	if view.Action != "Edit" {
		t.Errorf("action = %q", view.Action)
	}
	if view.Form.Title != "Scraper" || view.Form.ImgURL != project.ImgURL {
		t.Errorf("form not prefilled: %+v", view.Form)
	}
}

func TestDeleteProjectRedirectsToCategory(t *testing.T) {
	router, db := newTestRouter(t, &fakeNotifier{})
	cookies := loginAsAdmin(t, router)
	project := addProject(t, db, "Scraper", 1)

	rec := doGet(router, "/delete-project/Python/"+uintString(project.ID), cookies)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("delete status = %d", rec.Code)
	}
	if location := rec.Header().Get("Location"); location != "/projects/Python/1" {
		t.Errorf("redirect = %q", location)
	}

	if _, err := db.ProjectRepo().FindByID(project.ID); err == nil {
		t.Fatal("project still present after delete")
	}
}

func TestDeleteWithUnknownCategoryLeavesProjectIntact(t *testing.T) {
	router, db := newTestRouter(t, &fakeNotifier{})
	cookies := loginAsAdmin(t, router)
	project := addProject(t, db, "Scraper", 1)

	rec := doGet(router, "/delete-project/Gardening/"+uintString(project.ID), cookies)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	if _, err := db.ProjectRepo().FindByID(project.ID); err != nil {
		t.Fatalf("project was deleted on the 404 path: %v", err)
	}
}

func TestDeleteMissingProjectIs404(t *testing.T) {
	router, _ := newTestRouter(t, &fakeNotifier{})
	cookies := loginAsAdmin(t, router)

	rec := doGet(router, "/delete-project/Python/12345", cookies)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
