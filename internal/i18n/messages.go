package i18n

import (
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
)

// Message ids. Every id has an English and a Turkish entry below.
const (
	MsgLoginRequired      = "login.required"
	MsgLoginSuccess       = "login.success"
	MsgLoginFailed        = "login.failed"
	MsgRegisterMismatch   = "register.mismatch"
	MsgRegisterSuccess    = "register.success"
	MsgRegisterFailed     = "register.failed"
	MsgLogoutSuccess      = "logout.success"
	MsgSessionExpired     = "session.expired"
	MsgGenericError       = "generic.error"
	MsgTodoAdded          = "todo.added"
	MsgTodoAddFailed      = "todo.addFailed"
	MsgTodoDeleted        = "todo.deleted"
	MsgTodoConfirmDelete  = "todo.confirmDelete"
	MsgTodoToggleFailed   = "todo.toggleFailed"
	MsgTodosEmpty         = "todos.empty"
	MsgEventAdded         = "event.added"
	MsgEventAddFailed     = "event.addFailed"
	MsgEventDeleted       = "event.deleted"
	MsgEventConfirmDelete = "event.confirmDelete"
	MsgEventsEmpty        = "events.empty"
	MsgItemNotFound       = "item.notFound"
	MsgPriorityLow        = "priority.low"
	MsgPriorityMedium     = "priority.medium"
	MsgPriorityHigh       = "priority.high"
	MsgStatsTotal         = "stats.total"
	MsgStatsCompleted     = "stats.completed"
	MsgStatsPending       = "stats.pending"
	MsgStatsEvents        = "stats.events"
	MsgGreeting           = "greeting"
	MsgLoggedOutHint      = "loggedOut.hint"
	MsgTitleRequired      = "form.titleRequired"
	MsgTimesRequired      = "form.timesRequired"
	MsgEndBeforeStart     = "form.endBeforeStart"
	MsgInvalidPriority    = "form.invalidPriority"
	MsgInvalidDate        = "form.invalidDate"
	MsgCheckingSession    = "session.checking"
	MsgRefreshed          = "lists.refreshed"
)

var english = []*goi18n.Message{
	{ID: MsgLoginRequired, Other: "Email and password are required!"},
	{ID: MsgLoginSuccess, Other: "Signed in successfully!"},
	{ID: MsgLoginFailed, Other: "Sign-in failed!"},
	{ID: MsgRegisterMismatch, Other: "Passwords do not match!"},
	{ID: MsgRegisterSuccess, Other: "Account created!"},
	{ID: MsgRegisterFailed, Other: "Registration failed!"},
	{ID: MsgLogoutSuccess, Other: "Signed out."},
	{ID: MsgSessionExpired, Other: "Your session has expired, please sign in again."},
	{ID: MsgGenericError, Other: "Something went wrong!"},
	{ID: MsgTodoAdded, Other: "Todo added!"},
	{ID: MsgTodoAddFailed, Other: "Could not add todo!"},
	{ID: MsgTodoDeleted, Other: "Todo deleted!"},
	{ID: MsgTodoConfirmDelete, Other: "Delete todo \"{{.Title}}\"?"},
	{ID: MsgTodoToggleFailed, Other: "Could not update todo!"},
	{ID: MsgTodosEmpty, Other: "No todos yet"},
	{ID: MsgEventAdded, Other: "Event added!"},
	{ID: MsgEventAddFailed, Other: "Could not add event!"},
	{ID: MsgEventDeleted, Other: "Event deleted!"},
	{ID: MsgEventConfirmDelete, Other: "Delete event \"{{.Title}}\"?"},
	{ID: MsgEventsEmpty, Other: "No events yet"},
	{ID: MsgItemNotFound, Other: "Item {{.ID}} is no longer in the list"},
	{ID: MsgPriorityLow, Other: "Low"},
	{ID: MsgPriorityMedium, Other: "Medium"},
	{ID: MsgPriorityHigh, Other: "High"},
	{ID: MsgStatsTotal, Other: "Total"},
	{ID: MsgStatsCompleted, Other: "Completed"},
	{ID: MsgStatsPending, Other: "Pending"},
	{ID: MsgStatsEvents, Other: "Events"},
	{ID: MsgGreeting, Other: "Hello, {{.Name}}"},
	{ID: MsgLoggedOutHint, Other: "Not signed in. Press l to sign in or r to register."},
	{ID: MsgTitleRequired, Other: "Title is required!"},
	{ID: MsgTimesRequired, Other: "Start and end time are required!"},
	{ID: MsgEndBeforeStart, Other: "End time must be after the start time!"},
	{ID: MsgInvalidPriority, Other: "Priority must be low, medium or high!"},
	{ID: MsgInvalidDate, Other: "Unrecognised date \"{{.Value}}\""},
	{ID: MsgCheckingSession, Other: "Checking session"},
	{ID: MsgRefreshed, Other: "Lists refreshed"},
}

var turkish = []*goi18n.Message{
	{ID: MsgLoginRequired, Other: "E-posta ve şifre alanları zorunludur!"},
	{ID: MsgLoginSuccess, Other: "Başarıyla giriş yaptınız!"},
	{ID: MsgLoginFailed, Other: "Giriş başarısız!"},
	{ID: MsgRegisterMismatch, Other: "Şifreler eşleşmiyor!"},
	{ID: MsgRegisterSuccess, Other: "Başarıyla kayıt oldunuz!"},
	{ID: MsgRegisterFailed, Other: "Kayıt başarısız!"},
	{ID: MsgLogoutSuccess, Other: "Başarıyla çıkış yaptınız!"},
	{ID: MsgSessionExpired, Other: "Oturumunuz sona erdi, lütfen tekrar giriş yapın."},
	{ID: MsgGenericError, Other: "Bir hata oluştu!"},
	{ID: MsgTodoAdded, Other: "Todo başarıyla eklendi!"},
	{ID: MsgTodoAddFailed, Other: "Todo eklenemedi!"},
	{ID: MsgTodoDeleted, Other: "Todo silindi!"},
	{ID: MsgTodoConfirmDelete, Other: "\"{{.Title}}\" todo'sunu silmek istediğinizden emin misiniz?"},
	{ID: MsgTodoToggleFailed, Other: "Todo güncellenemedi!"},
	{ID: MsgTodosEmpty, Other: "Henüz todo eklenmemiş"},
	{ID: MsgEventAdded, Other: "Etkinlik başarıyla eklendi!"},
	{ID: MsgEventAddFailed, Other: "Etkinlik eklenemedi!"},
	{ID: MsgEventDeleted, Other: "Etkinlik silindi!"},
	{ID: MsgEventConfirmDelete, Other: "\"{{.Title}}\" etkinliğini silmek istediğinizden emin misiniz?"},
	{ID: MsgEventsEmpty, Other: "Henüz etkinlik eklenmemiş"},
	{ID: MsgItemNotFound, Other: "{{.ID}} numaralı kayıt listede yok"},
	{ID: MsgPriorityLow, Other: "Düşük"},
	{ID: MsgPriorityMedium, Other: "Orta"},
	{ID: MsgPriorityHigh, Other: "Yüksek"},
	{ID: MsgStatsTotal, Other: "Toplam"},
	{ID: MsgStatsCompleted, Other: "Tamamlanan"},
	{ID: MsgStatsPending, Other: "Bekleyen"},
	{ID: MsgStatsEvents, Other: "Etkinlik"},
	{ID: MsgGreeting, Other: "Merhaba, {{.Name}}"},
	{ID: MsgLoggedOutHint, Other: "Giriş yapılmadı. Giriş için l, kayıt için r tuşuna basın."},
	{ID: MsgTitleRequired, Other: "Başlık zorunludur!"},
	{ID: MsgTimesRequired, Other: "Başlangıç ve bitiş zamanı zorunludur!"},
	{ID: MsgEndBeforeStart, Other: "Bitiş zamanı başlangıçtan sonra olmalıdır!"},
	{ID: MsgInvalidPriority, Other: "Öncelik düşük, orta veya yüksek olmalıdır!"},
	{ID: MsgInvalidDate, Other: "Tanınmayan tarih \"{{.Value}}\""},
	{ID: MsgCheckingSession, Other: "Oturum kontrol ediliyor"},
	{ID: MsgRefreshed, Other: "Listeler yenilendi"},
}
