package app

import (
	"github.com/gin-gonic/gin"

	"anke-go-api/services/app_service"
	"anke-go-api/services/notification_service"
	"anke-go-api/services/point_service"
)

var (
	authService         *app_service.AuthService
	postService         *app_service.PostService
	commentService      *app_service.CommentService
	favoriteService     *app_service.FavoriteService
	ledgerService       *point_service.LedgerService
	exchangeService     *point_service.ExchangeService
	notificationService *notification_service.Service
)

// Init wires the handler package to its services. Called once from main
// after the database and checker are up.
func Init(
	auth *app_service.AuthService,
	posts *app_service.PostService,
	comments *app_service.CommentService,
	favorites *app_service.FavoriteService,
	ledger *point_service.LedgerService,
	exchange *point_service.ExchangeService,
	notifications *notification_service.Service,
) {
	authService = auth
	postService = posts
	commentService = comments
	favoriteService = favorites
	ledgerService = ledger
	exchangeService = exchange
	notificationService = notifications
}

// uid returns the authenticated user id, or zero for guests.
func uid(c *gin.Context) int {
	if v, ok := c.Get("uid"); ok {
		if id, ok := v.(int); ok {
			return id
		}
	}
	return 0
}
