package get

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"shopfloor/http-server/response"
	"shopfloor/internal/filter"
	"shopfloor/internal/service/board"
	"shopfloor/internal/storage"
)

type DirectoryReader interface {
	Directory() board.Directory
}

func GetSites(log *slog.Logger, reader DirectoryReader) http.HandlerFunc {
	return list(log, "handlers.directory.GetSites", reader,
		func(d board.Directory) []storage.Site { return d.Sites }, filter.SiteFields)
}

func GetTeams(log *slog.Logger, reader DirectoryReader) http.HandlerFunc {
	return list(log, "handlers.directory.GetTeams", reader,
		func(d board.Directory) []storage.Team { return d.Teams }, filter.TeamFields)
}

// GetEmployees: status=active|inactive.
func GetEmployees(log *slog.Logger, reader DirectoryReader) http.HandlerFunc {
	return list(log, "handlers.directory.GetEmployees", reader,
		func(d board.Directory) []storage.Employee { return d.Employees }, filter.EmployeeFields)
}

func GetBOMs(log *slog.Logger, reader DirectoryReader) http.HandlerFunc {
	return list(log, "handlers.directory.GetBOMs", reader,
		func(d board.Directory) []storage.BOM { return d.BOMs }, filter.BOMFields)
}

func GetRoutings(log *slog.Logger, reader DirectoryReader) http.HandlerFunc {
	return list(log, "handlers.directory.GetRoutings", reader,
		func(d board.Directory) []storage.Routing { return d.Routings }, filter.RoutingFields)
}

func GetPickLists(log *slog.Logger, reader DirectoryReader) http.HandlerFunc {
	return list(log, "handlers.directory.GetPickLists", reader,
		func(d board.Directory) []storage.PickList { return d.PickLists }, filter.PickListFields)
}

func list[T any](log *slog.Logger, op string, reader DirectoryReader, pick func(board.Directory) []T, fields func(T) filter.Fields) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		criteria, err := filter.FromQuery(r.URL.Query())
		if err != nil {
			log.Debug("invalid filter", slog.String("op", op), slog.String("error", err.Error()))
			response.BadRequest(w, r, err.Error())
			return
		}

		render.JSON(w, r, filter.List(pick(reader.Directory()), criteria, fields))
	}
}
