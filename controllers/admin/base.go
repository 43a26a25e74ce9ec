package admin

import (
	"anke-go-api/services/admin_service"
	"anke-go-api/services/app_service"
	"anke-go-api/services/cleanup_service"
	"anke-go-api/services/keyword_service"
	"anke-go-api/services/mail_service"
	"anke-go-api/services/point_service"
	"anke-go-api/utils"
)

var (
	authService         *app_service.AuthService
	postAdminService    *admin_service.PostAdminService
	commentAdminService *admin_service.CommentAdminService
	userAdminService    *admin_service.UserAdminService
	pointAdminService   *admin_service.PointAdminService
	ngWordAdminService  *admin_service.NgWordAdminService
	exchangeService     *point_service.ExchangeService
	pointStore          point_service.Store
	cleanupScanner      *cleanup_service.Scanner
	keywordLinker       *keyword_service.Linker
	mailService         *mail_service.Service
	storageUtil         *utils.StorageUtil // nil when object storage is not configured
)

// Init wires the admin handlers to their services. Called once from main.
func Init(
	auth *app_service.AuthService,
	posts *admin_service.PostAdminService,
	comments *admin_service.CommentAdminService,
	users *admin_service.UserAdminService,
	points *admin_service.PointAdminService,
	ngWords *admin_service.NgWordAdminService,
	exchange *point_service.ExchangeService,
	store point_service.Store,
	cleanup *cleanup_service.Scanner,
	linker *keyword_service.Linker,
	mail *mail_service.Service,
	storage *utils.StorageUtil,
) {
	authService = auth
	postAdminService = posts
	commentAdminService = comments
	userAdminService = users
	pointAdminService = points
	ngWordAdminService = ngWords
	exchangeService = exchange
	pointStore = store
	cleanupScanner = cleanup
	keywordLinker = linker
	mailService = mail
	storageUtil = storage
}
