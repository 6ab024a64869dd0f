package server

import (
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
	"toot_scheduler/dto"
	"toot_scheduler/logic"
	"toot_scheduler/shared"
)

const tmplPathPrefx = "www/"
const versionFileName = "version.txt"

// Server-rendered pages: the scheduler UI and the login page.
type webHandlerGroup struct {
	cfg           *shared.Config
	logger        shared.ILogger
	metrics       logic.IMetrics
	nav           logic.INavigator
	sessions      logic.ISessionStore
	urls          *shared.UrlBuilder
	version       string
	timestamp     string
	pageTemplates map[string]*template.Template
}

func NewWebHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
	nav logic.INavigator,
	sessions logic.ISessionStore,
) IHandlerGroup {
	res := webHandlerGroup{
		cfg:           cfg,
		logger:        logger,
		metrics:       metrics,
		nav:           nav,
		sessions:      sessions,
		urls:          shared.NewUrlBuilder(cfg),
		timestamp:     fmt.Sprintf("%d", time.Now().UnixMilli()),
		pageTemplates: make(map[string]*template.Template),
	}
	versionBytes, _ := os.ReadFile(tmplPathPrefx + versionFileName)
	res.version = strings.TrimSpace(string(versionBytes))
	res.initTemplates()
	return &res
}

func (hg *webHandlerGroup) Prefix() string {
	return "/web"
}

func (hg *webHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/login", func(w http.ResponseWriter, r *http.Request) { hg.getLogin(w, r) }},
		{"GET", rootPlacholder, func(w http.ResponseWriter, r *http.Request) { hg.getRoot(w, r) }},
	}
}

func (hg *webHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return emptyMW
}

func (hg *webHandlerGroup) initTemplates() {
	mainFiles, err := filepath.Glob(tmplPathPrefx + "main-*.tmpl")
	if err != nil {
		hg.logger.Errorf("Failed to list main-*.tmpl: %v", err)
		panic(err)
	}
	for _, fn := range mainFiles {
		mainName := strings.TrimPrefix(fn, tmplPathPrefx+"main-")
		mainName = strings.TrimSuffix(mainName, ".tmpl")
		var t *template.Template
		if t, err = hg.parsePageTemplate(mainName); err != nil {
			hg.logger.Errorf("Failed to parse page template: %s: %v", fn, err)
			panic(err)
		}
		hg.pageTemplates[mainName] = t
	}
}

func (hg *webHandlerGroup) parsePageTemplate(mainName string) (*template.Template, error) {
	t := template.New("master")
	var err error
	var tmplFiles []string
	if tmplFiles, err = filepath.Glob(tmplPathPrefx + "*.tmpl"); err != nil {
		return nil, err
	}
	for _, fn := range tmplFiles {
		include := true
		if strings.HasPrefix(fn, tmplPathPrefx+"main-") {
			if fn != tmplPathPrefx+"main-"+mainName+".tmpl" {
				include = false
			}
		}
		if !include {
			continue
		}
		if _, err = t.ParseFiles(fn); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (hg *webHandlerGroup) mustGetPageTemplate(mainName string) (*template.Template, *baseModel) {
	bm := baseModel{Version: hg.version}
	if hg.cfg.CachePageTemplates {
		t, found := hg.pageTemplates[mainName]
		if !found {
			err := fmt.Errorf("Page template not found: %s", mainName)
			hg.logger.Errorf("%v", err)
			panic(err)
		}
		bm.Timestamp = hg.timestamp
		return t, &bm
	} else {
		t, err := hg.parsePageTemplate(mainName)
		if err != nil {
			hg.logger.Errorf("%v", err)
			panic(err)
		}
		bm.Timestamp = fmt.Sprintf("%d", time.Now().UnixMilli())
		return t, &bm
	}
}

type baseModel struct {
	Timestamp string
	Version   string
	Data      any
}

type rootModel struct {
	Instance string
	Account  *dto.Account
}

type loginModel struct {
	Error       string
	RedirectUri string
}

func (hg *webHandlerGroup) render(w http.ResponseWriter, mainName string, data any) {
	t, model := hg.mustGetPageTemplate(mainName)
	model.Data = data
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, "index.tmpl", model); err != nil {
		hg.logger.Errorf("Failed to render page %s: %v", mainName, err)
	}
}

func (hg *webHandlerGroup) getRoot(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("root")
	defer obs.Finish()

	redirect := hg.nav.TakeRedirect()
	if redirect || !hg.sessions.IsAuthenticated() {
		http.Redirect(w, r, hg.urls.LoginPage(), http.StatusFound)
		return
	}
	sess := hg.sessions.Session()
	hg.render(w, "root", &rootModel{Instance: sess.InstanceUrl, Account: sess.Account})
}

func (hg *webHandlerGroup) getLogin(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("login")
	defer obs.Finish()

	hg.render(w, "login", &loginModel{
		Error:       r.URL.Query().Get("error"),
		RedirectUri: hg.urls.RedirectUri(),
	})
}
