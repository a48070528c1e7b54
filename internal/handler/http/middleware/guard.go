package middleware

import (
	"context"
	"net/http"
	"net/url"

	"github.com/hrsystem/hr-gateway/internal/domain/auth"
	"github.com/hrsystem/hr-gateway/internal/domain/user"
	"github.com/hrsystem/hr-gateway/internal/handler/http/response"
	"github.com/hrsystem/hr-gateway/internal/pkg/session"
)

// Semantic selects which role-check a route uses. The two are not
// interchangeable and every route declares its choice explicitly.
type Semantic int

const (
	// SemanticExactSet admits only roles literally named by the route.
	SemanticExactSet Semantic = iota
	// SemanticAtLeast admits the named role and everything above it.
	SemanticAtLeast
)

// RouteDefinition is the static access policy for a route. Built once at
// router construction, never mutated.
type RouteDefinition struct {
	RequireAuth  bool
	Semantic     Semantic
	AllowedRoles []user.Role // exact-set; empty means any authenticated role
	MinimumRole  user.Role   // hierarchical; used with SemanticAtLeast
}

// Decision is the outcome of one guard evaluation.
type Decision int

const (
	DecisionAllowed Decision = iota
	// DecisionRedirectLogin: no usable session. The original path is
	// preserved so login can return the user there.
	DecisionRedirectLogin
	// DecisionRedirectForbidden: signed in, role insufficient. Rendered
	// as a visible denial, never silently folded into the login case.
	DecisionRedirectForbidden
)

// Evaluate runs the access policy against the current session. Pure: it
// reads the session, decides, and touches nothing, so every navigation
// re-evaluates from scratch and a logout is reflected immediately.
func Evaluate(route RouteDefinition, sess *auth.Session) Decision {
	if !route.RequireAuth {
		return DecisionAllowed
	}
	if !sess.Valid() {
		return DecisionRedirectLogin
	}

	switch route.Semantic {
	case SemanticAtLeast:
		if !user.IsAtLeast(&sess.User, route.MinimumRole) {
			return DecisionRedirectForbidden
		}
	default:
		if len(route.AllowedRoles) > 0 && !user.HasRole(&sess.User, route.AllowedRoles...) {
			return DecisionRedirectForbidden
		}
	}
	return DecisionAllowed
}

// Guard turns route definitions into chi middleware backed by the cookie
// session store.
type Guard struct {
	store     *session.Store
	loginPath string
}

func NewGuard(store *session.Store, loginPath string) *Guard {
	return &Guard{store: store, loginPath: loginPath}
}

// Protect enforces a route definition. On success the session rides the
// request context for handlers to pick up.
func (g *Guard) Protect(route RouteDefinition) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := g.store.Load(r)

			switch Evaluate(route, sess) {
			case DecisionRedirectLogin:
				response.Unauthenticated(w, "Sign in to access this page", g.LoginRedirect(r.URL.Path))
				return
			case DecisionRedirectForbidden:
				response.Forbidden(w, "You don't have permission to access this page")
				return
			}

			if sess != nil {
				r = r.WithContext(withSession(r.Context(), sess))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth admits any authenticated role.
func (g *Guard) RequireAuth() func(http.Handler) http.Handler {
	return g.Protect(RouteDefinition{RequireAuth: true})
}

// RequireRoles admits exactly the named roles.
func (g *Guard) RequireRoles(roles ...user.Role) func(http.Handler) http.Handler {
	return g.Protect(RouteDefinition{
		RequireAuth:  true,
		Semantic:     SemanticExactSet,
		AllowedRoles: roles,
	})
}

// RequireAtLeast admits the named role and everything ranked above it.
func (g *Guard) RequireAtLeast(role user.Role) func(http.Handler) http.Handler {
	return g.Protect(RouteDefinition{
		RequireAuth: true,
		Semantic:    SemanticAtLeast,
		MinimumRole: role,
	})
}

// LoginRedirect builds the login entry point with the originally
// requested path attached.
func (g *Guard) LoginRedirect(next string) string {
	if next == "" || next == g.loginPath {
		return g.loginPath
	}
	return g.loginPath + "?next=" + url.QueryEscape(next)
}

type contextKey struct{}

var sessionKey = contextKey{}

func withSession(ctx context.Context, sess *auth.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// SessionFromContext returns the session the guard attached, if any.
func SessionFromContext(ctx context.Context) (*auth.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(*auth.Session)
	return sess, ok && sess.Valid()
}
