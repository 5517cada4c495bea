package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/otonality/jipitch/comma"
	"github.com/otonality/jipitch/constants"
	"github.com/otonality/jipitch/model"
)

func init() {
	serveCmd.Flags().Int("port", 8080, "listen port")
	serveCmd.Flags().Float64("concert-pitch", constants.DefaultConcertPitch, "frequency of the 1/1 in Hz")
	viper.BindPFlag("port", serveCmd.Flags().Lookup("port"))
	viper.BindPFlag("concert_pitch", serveCmd.Flags().Lookup("concert-pitch"))
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the analysis HTTP API",
	Long:  `Serves the analysis HTTP API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

type server struct {
	logger *zap.SugaredLogger
	table  comma.Table
}

func writeError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: detail})
}

func (s *server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var input model.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "could not decode request body: "+err.Error())
		return
	}
	if len(input.Ratios) == 0 {
		writeError(w, http.StatusBadRequest, "need at least one ratio")
		return
	}

	concertPitch := input.ConcertPitch
	if concertPitch <= 0 {
		concertPitch = viper.GetFloat64("concert_pitch")
	}
	if concertPitch <= 0 {
		concertPitch = constants.DefaultConcertPitch
	}

	res := model.AnalyzeResponse{RequestId: uuid.New().String()}
	for _, ratio := range input.Ratios {
		analysis, err := buildRatioAnalysis(ratio, concertPitch, s.table)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		res.Results = append(res.Results, analysis)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
	s.logger.Infow("analyzed",
		"request_id", res.RequestId,
		"ratios", len(res.Results),
		"took", time.Since(started))
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

func newRouter(s *server) http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/analyze", s.handleAnalyze).Methods("POST")
	router.HandleFunc("/healthz", handleHealth).Methods("GET")
	return cors.Default().Handler(router)
}

func serve() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("Could not create logger: " + err.Error())
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	s := &server{logger: sugar, table: comma.DefaultTable()}
	addr := fmt.Sprintf(":%d", viper.GetInt("port"))
	sugar.Infow("listening", "addr", addr)
	sugar.Fatal(http.ListenAndServe(addr, newRouter(s)))
}
