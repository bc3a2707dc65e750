package formatting

// PluralizeWindows возвращает правильное склонение слова "окно"
func PluralizeWindows(count int) string {
	if count%10 == 1 && count%100 != 11 {
		return "окно"
	}
	if count%10 >= 2 && count%10 <= 4 && (count%100 < 10 || count%100 >= 20) {
		return "окна"
	}
	return "окон"
}

// PluralizeClubs возвращает правильное склонение слова "клуб"
func PluralizeClubs(count int) string {
	if count%10 == 1 && count%100 != 11 {
		return "клуб"
	}
	if count%10 >= 2 && count%10 <= 4 && (count%100 < 10 || count%100 >= 20) {
		return "клуба"
	}
	return "клубов"
}
