package i18n

var thai = map[string]string{
	"app.title":                  "ระบบจัดการหลังบ้าน",
	"lang.switch":                "English",
	"loading":                    "กำลังโหลด...",
	"nav.dashboard":              "แดชบอร์ด",
	"nav.rooms":                  "แก้ไขห้องพัก",
	"nav.rooms_new":              "เพิ่มห้องพัก",
	"nav.room_types":             "ประเภทห้องพัก",
	"nav.stock":                  "จัดการสต็อก",
	"nav.orders":                 "คำสั่งซื้อ",
	"nav.attractions":            "แก้ไขพิพิธภัณฑ์/สถานที่ท่องเที่ยว",
	"nav.attractions_new":        "เพิ่มพิพิธภัณฑ์/สถานที่ท่องเที่ยว",
	"nav.logout":                 "ออกจากระบบ",
	"login.title":                "เข้าสู่ระบบ",
	"login.email":                "อีเมล",
	"login.password":             "รหัสผ่าน",
	"login.submit":               "เข้าสู่ระบบ",
	"login.forgot":               "ลืมรหัสผ่าน?",
	"login.error.required":       "กรุณากรอกอีเมลและรหัสผ่าน",
	"login.error.invalid":        "อีเมลหรือรหัสผ่านไม่ถูกต้อง",
	"login.error.timeout":        "การเชื่อมต่อหมดเวลา กรุณาลองใหม่อีกครั้ง",
	"login.error.unavailable":    "ไม่สามารถเชื่อมต่อเซิร์ฟเวอร์ได้",
	"login.error.rejected":       "บัญชีนี้ไม่สามารถเข้าสู่ระบบได้",
	"login.error.unexpected":     "เกิดข้อผิดพลาด กรุณาลองใหม่อีกครั้ง",
	"forgot.title":               "ลืมรหัสผ่าน",
	"forgot.body":                "กรุณาติดต่อผู้ดูแลระบบเพื่อรีเซ็ตรหัสผ่านของคุณ",
	"forgot.back":                "กลับไปหน้าเข้าสู่ระบบ",
	"dashboard.title":            "แดชบอร์ด",
	"dashboard.welcome":          "ยินดีต้อนรับ %s",
	"dashboard.hotel":            "รหัสโรงแรม",
	"dashboard.hotel_name":       "ชื่อโรงแรม",
	"dashboard.role":             "สิทธิ์การใช้งาน",
	"dashboard.orders_total":     "คำสั่งซื้อทั้งหมด",
	"dashboard.orders_confirmed": "ยืนยันแล้ว",
	"dashboard.orders_cancelled": "ยกเลิกแล้ว",
	"dashboard.session_expires":  "เซสชันหมดอายุ",
	"section.placeholder":        "หน้านี้ใช้สำหรับ %s",
	"error.not_found":            "ไม่พบหน้าที่ต้องการ",
	"error.forbidden":            "คุณไม่มีสิทธิ์เข้าถึงหน้านี้",
}

var english = map[string]string{
	"app.title":                  "Back Office",
	"lang.switch":                "ภาษาไทย",
	"loading":                    "Loading...",
	"nav.dashboard":              "Dashboard",
	"nav.rooms":                  "Edit rooms",
	"nav.rooms_new":              "Add room",
	"nav.room_types":             "Room types",
	"nav.stock":                  "Stock",
	"nav.orders":                 "Orders",
	"nav.attractions":            "Edit museum/attraction",
	"nav.attractions_new":        "Add museum/attraction",
	"nav.logout":                 "Log out",
	"login.title":                "Sign in",
	"login.email":                "Email",
	"login.password":             "Password",
	"login.submit":               "Sign in",
	"login.forgot":               "Forgot password?",
	"login.error.required":       "Email and password are required",
	"login.error.invalid":        "Invalid email or password",
	"login.error.timeout":        "The request timed out, please try again",
	"login.error.unavailable":    "Cannot reach the server",
	"login.error.rejected":       "This account cannot sign in",
	"login.error.unexpected":     "Something went wrong, please try again",
	"forgot.title":               "Forgot password",
	"forgot.body":                "Please contact your administrator to reset your password.",
	"forgot.back":                "Back to sign in",
	"dashboard.title":            "Dashboard",
	"dashboard.welcome":          "Welcome, %s",
	"dashboard.hotel":            "Hotel ID",
	"dashboard.hotel_name":       "Hotel name",
	"dashboard.role":             "Role",
	"dashboard.orders_total":     "All orders",
	"dashboard.orders_confirmed": "Confirmed",
	"dashboard.orders_cancelled": "Cancelled",
	"dashboard.session_expires":  "Session expires",
	"section.placeholder":        "This page manages %s",
	"error.not_found":            "Page not found",
	"error.forbidden":            "You do not have access to this page",
}
