package api

import (
	"log"
	"net/http"

	"github.com/example/shopfront/internal/api/middleware"
	"github.com/example/shopfront/internal/auth"
)

type RouterConfig struct {
	Handlers     *Handlers
	AuthHandlers *AuthHandlers
	Tokens       *auth.TokenService
	// ImagesDir serves uploaded images when non-empty
	ImagesDir string
}

func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()
	requireToken := middleware.Auth(cfg.Tokens)

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("Shopfront API is running"))
	})

	// Authentication
	mux.HandleFunc("/signup", postOnly(cfg.AuthHandlers.Signup))
	mux.HandleFunc("/login", postOnly(cfg.AuthHandlers.Login))

	// Cart, token-gated
	mux.Handle("/addtocart", requireToken(postOnly(cfg.Handlers.AddToCart)))
	mux.Handle("/removefromcart", requireToken(postOnly(cfg.Handlers.RemoveFromCart)))
	mux.Handle("/getcart", requireToken(postOnly(cfg.Handlers.GetCart)))

	// Catalog, deliberately open like the legacy backend
	mux.HandleFunc("/addproduct", postOnly(cfg.Handlers.AddProduct))
	mux.HandleFunc("/removeproduct", postOnly(cfg.Handlers.RemoveProduct))
	mux.HandleFunc("/allproducts", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		cfg.Handlers.AllProducts(w, r)
	})

	// Image upload and serving
	mux.HandleFunc("/upload", postOnly(cfg.Handlers.Upload))
	if cfg.ImagesDir != "" {
		fs := http.FileServer(http.Dir(cfg.ImagesDir))
		mux.Handle("/images/", http.StripPrefix("/images/", fs))
	}

	return withLogging(mux)
}

func postOnly(handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		handler(w, r)
	}
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("[API] %s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
