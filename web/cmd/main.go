package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	gtranslate "cloud.google.com/go/translate"
	"github.com/google/generative-ai-go/genai"
	"github.com/ridge/must/v2"
	"github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"

	"github.com/Shruti30000/Document-Translation/pkg/env"
	docHttp "github.com/Shruti30000/Document-Translation/pkg/http"
	"github.com/Shruti30000/Document-Translation/web/impl"
	docGenai "github.com/Shruti30000/Document-Translation/web/impl/genai"
	"github.com/Shruti30000/Document-Translation/web/impl/pdf"
	"github.com/Shruti30000/Document-Translation/web/impl/translate"
)

func main() {
	env.Load()

	ctx := context.Background()

	geminiKey := apiKey(ctx, "GEMINI_API_KEY", "GEMINI_API_KEY_SECRET_NAME")
	genaiClient := must.OK1(genai.NewClient(ctx, option.WithAPIKey(geminiKey)))
	defer genaiClient.Close()

	var translationClient translate.Client
	switch backend := env.StringVariable("TRANSLATION_BACKEND", "google"); backend {
	case "google":
		translateKey := apiKey(ctx, "GOOGLE_TRANSLATE_API_KEY", "GOOGLE_TRANSLATE_API_KEY_SECRET_NAME")
		client := must.OK1(gtranslate.NewClient(ctx, option.WithAPIKey(translateKey)))
		defer client.Close()
		translationClient = translate.NewGoogle(client)
	case "openai":
		openaiKey := apiKey(ctx, "OPENAI_API_KEY", "OPENAI_KEY_SECRET_NAME")
		translationClient = translate.NewOpenAI(openai.NewClient(openaiKey))
	default:
		log.Fatalf("Unknown TRANSLATION_BACKEND %q", backend)
	}

	server := impl.New(docGenai.New(genaiClient), translationClient, pdf.Rasterize)

	mux := http.NewServeMux()
	server.Register(mux)

	staticFileDir := env.StringVariable("DOCTRANS_STATIC_FILE_DIR", "")
	if staticFileDir != "" {
		mux.HandleFunc("/assets/", docHttp.HandleFileServer(http.FileServer(http.Dir(staticFileDir))))
		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			http.ServeFile(w, r, staticFileDir+"/index.html")
		})
	}

	port := env.RequiredIntVariable("HTTP_PORT")
	log.Printf("Document translation server listening on port %d", port)
	must.OK(http.ListenAndServe(fmt.Sprintf(":%d", port), mux))
}

// apiKey reads a credential once at startup: directly from the environment
// for local development, else from GCP Secret Manager.
func apiKey(ctx context.Context, envName, secretEnvName string) string {
	if key := os.Getenv(envName); key != "" {
		return key
	}

	secretmanagerClient := must.OK1(secretmanager.NewClient(ctx))
	defer secretmanagerClient.Close()

	secretValue := must.OK1(secretmanagerClient.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: fmt.Sprintf("projects/%s/secrets/%s/versions/latest",
			env.RequiredStringVariable("GCP_PROJECT_ID"),
			env.RequiredStringVariable(secretEnvName),
		),
	}))
	return string(secretValue.Payload.Data)
}
