package conversation

// Backend failure replies.
const (
	MsgGenericError         = "Üzgünüm, bir hata oluştu. Lütfen daha sonra tekrar deneyin."
	MsgBackendNotConfigured = "Sistem yapılandırma hatası. Lütfen yönetici ile iletişime geçin."
	MsgBackendUnsuccessful  = "İşlem başarısız oldu. Lütfen tekrar deneyin."
	MsgBackendEmpty         = "Boş yanıt alındı. Lütfen tekrar deneyin."
	MsgBackendUnavailable   = "Agent servisi şu anda yanıt vermiyor. Lütfen daha sonra tekrar deneyin."
	MsgBackendTimeout       = "İstek zaman aşımına uğradı. Lütfen tekrar deneyin."
	MsgBackendUnexpected    = "Beklenmeyen bir hata oluştu."
)

// MsgDetailOutOfRange takes the cache size twice.
const MsgDetailOutOfRange = "Bu aramada sadece %d ilan var. 1-%d arasından bir numara seçebilirsin."

// Media failure notice, one line per failed attachment.
const (
	MsgMediaFailed      = "⚠️ %d. fotoğraf yüklenemedi: %s"
	ReasonMediaCapacity = "bir ilana en fazla %d fotoğraf eklenebilir"
	ReasonMediaInvalid  = "sadece 10 MB altı JPEG, PNG veya WEBP fotoğraflar kabul edilir"
	ReasonMediaCorrupt  = "görsel okunamadı"
	ReasonMediaNetwork  = "bağlantı hatası, lütfen tekrar gönderin"
	ReasonMediaUnknown  = "bilinmeyen hata"
)
