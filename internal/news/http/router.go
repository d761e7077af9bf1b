package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/marcusyoung/nc-news-api/internal/news/service"
	"github.com/marcusyoung/nc-news-api/internal/news/store"
	"github.com/marcusyoung/nc-news-api/pkg/httpx"
	"github.com/marcusyoung/nc-news-api/pkg/jwtx"
	"github.com/marcusyoung/nc-news-api/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	SessionService *service.SessionService
	UserService    *service.UserService
	TopicService   *service.TopicService
	ArticleService *service.ArticleService
	CommentService *service.CommentService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerTopics()
	r.registerArticles()
	r.registerComments()
	r.registerSystem()

	r.Mux.Handle("GET /api", IndexHandler())

	// Everything unmatched, any method, gets the uniform 404 body.
	r.Mux.Handle("/", NotFoundHandler())
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{
		UserService:    r.UserService,
		SessionService: r.SessionService,
	}

	r.Mux.Handle("GET /api/users", http.HandlerFunc(h.HandleList))

	// Signup and login are the credential-guessing surfaces: strict rate
	// limit by IP on both.
	r.Mux.Handle("POST /api/users",
		httpx.Chain(http.HandlerFunc(h.HandleSignup),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /api/users/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// Logout never touches server state, no gate needed.
	r.Mux.Handle("POST /api/users/logout", http.HandlerFunc(h.HandleLogout))
}

func (r *Router) registerTopics() {
	h := &TopicsHandler{TopicService: r.TopicService}

	r.Mux.Handle("GET /api/topics", http.HandlerFunc(h.HandleList))
}

func (r *Router) registerArticles() {
	h := &ArticlesHandler{
		ArticleService: r.ArticleService,
		CommentService: r.CommentService,
	}

	r.Mux.Handle("GET /api/articles", http.HandlerFunc(h.HandleList))
	r.Mux.Handle("GET /api/articles/{article_id}", http.HandlerFunc(h.HandleGet))
	r.Mux.Handle("GET /api/articles/{article_id}/comments", http.HandlerFunc(h.HandleListComments))

	// Mutating routes sit behind the session gate; the rate limit keys on
	// the attached identity, so it runs inside the gate.
	r.Mux.Handle("PATCH /api/articles/{article_id}",
		httpx.Chain(http.HandlerFunc(h.HandleVote),
			httpx.SessionMiddleware(r.verifier),
			httpx.RateLimitByIdentity(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /api/articles/{article_id}/comments",
		httpx.Chain(http.HandlerFunc(h.HandleCreateComment),
			httpx.SessionMiddleware(r.verifier),
			httpx.RateLimitByIdentity(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerComments() {
	h := &CommentsHandler{CommentService: r.CommentService}

	r.Mux.Handle("PATCH /api/comments/{comment_id}",
		httpx.Chain(http.HandlerFunc(h.HandleVote),
			httpx.SessionMiddleware(r.verifier),
			httpx.RateLimitByIdentity(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /api/comments/{comment_id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.SessionMiddleware(r.verifier),
			httpx.RateLimitByIdentity(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
